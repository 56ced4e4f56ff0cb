package hpge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// Sample records covering every geometry variant.

func sampleBeGe() *metadata.Metadata {
	return &metadata.Metadata{
		Name: "B00000B",
		Type: metadata.TypeBeGe,
		Production: metadata.Production{
			Enrichment: &metadata.Quantity{Val: 0.9, Unc: 0.003},
		},
		Geometry: metadata.Geometry{
			HeightInMM: 29.46,
			RadiusInMM: 36.98,
			Groove: metadata.Groove{
				DepthInMM:  2,
				RadiusInMM: metadata.GrooveRadius{Outer: 10.5, Inner: 7.5},
			},
			PPContact: metadata.PPContact{RadiusInMM: 7.5},
		},
	}
}

func samplePPC() *metadata.Metadata {
	return &metadata.Metadata{
		Name: "P00573A",
		Type: metadata.TypePPC,
		Geometry: metadata.Geometry{
			HeightInMM: 50,
			RadiusInMM: 35,
			PPContact:  metadata.PPContact{RadiusInMM: 2, DepthInMM: 0.5},
			Taper: metadata.Taper{
				Top: metadata.TaperSpec{AngleInDeg: 45, HeightInMM: 5},
			},
		},
	}
}

func sampleICPC() *metadata.Metadata {
	return &metadata.Metadata{
		Name: "V02160A",
		Type: metadata.TypeICPC,
		Production: metadata.Production{
			Enrichment: &metadata.Quantity{Val: 0.92},
		},
		Geometry: metadata.Geometry{
			HeightInMM: 80,
			RadiusInMM: 40,
			Groove: metadata.Groove{
				DepthInMM:  2,
				RadiusInMM: metadata.GrooveRadius{Outer: 10.5, Inner: 7.5},
			},
			PPContact: metadata.PPContact{RadiusInMM: 7.5},
			Taper: metadata.Taper{
				Top:      metadata.TaperSpec{AngleInDeg: 15, HeightInMM: 10},
				Borehole: metadata.TaperSpec{AngleInDeg: 5, HeightInMM: 5},
			},
			Borehole: metadata.Borehole{RadiusInMM: 5, DepthInMM: 30},
		},
	}
}

func sampleCoax() *metadata.Metadata {
	return &metadata.Metadata{
		Name: "C000RG1",
		Type: metadata.TypeCoax,
		Geometry: metadata.Geometry{
			HeightInMM: 70,
			RadiusInMM: 38,
			Groove: metadata.Groove{
				DepthInMM:  2,
				RadiusInMM: metadata.GrooveRadius{Outer: 13, Inner: 9},
			},
			Taper: metadata.Taper{
				Top:      metadata.TaperSpec{AngleInDeg: 45, HeightInMM: 3},
				Bottom:   metadata.TaperSpec{AngleInDeg: 45, HeightInMM: 3},
				Borehole: metadata.TaperSpec{AngleInDeg: 10, HeightInMM: 4},
			},
			Borehole: metadata.Borehole{RadiusInMM: 6, DepthInMM: 30},
		},
	}
}

// sampleCylinder is the fully degenerate record: no groove, no contact,
// no taper.
func sampleCylinder() *metadata.Metadata {
	return &metadata.Metadata{
		Name: "B99999X",
		Type: metadata.TypeBeGe,
		Geometry: metadata.Geometry{
			HeightInMM: 29.46,
			RadiusInMM: 36.98,
		},
	}
}

func allSamples() []*metadata.Metadata {
	return []*metadata.Metadata{
		sampleBeGe(), samplePPC(), sampleICPC(), sampleCoax(), sampleCylinder(),
	}
}

func mustDetector(t *testing.T, meta *metadata.Metadata) *Detector {
	t.Helper()
	detector, err := New(meta, "", nil)
	require.NoError(t, err)
	return detector
}
