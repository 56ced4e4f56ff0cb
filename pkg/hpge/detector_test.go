package hpge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/material"
)

// Regression values for the sample bege record, cross-checked against
// the upstream detector-geometry tooling.
func TestBeGeDerivedQuantities(t *testing.T) {
	detector := mustDetector(t, sampleBeGe())

	total, err := detector.SurfaceArea()
	require.NoError(t, err)
	assert.InDelta(t, 13775.33, total, 0.01)
	assert.InDelta(t, 126226.53, detector.Volume(), 0.01)
	assert.InDelta(t, 700.58, detector.Mass(), 0.01)
	assert.Equal(t, "EnrichedGermanium0.900", detector.Material().Name)
}

func TestDerivedQuantitiesPerVariant(t *testing.T) {
	for _, tc := range []struct {
		name   string
		build  func() *Detector
		area   float64
		volume float64
	}{
		{"ppc", func() *Detector { return mustDetector(t, samplePPC()) }, 16274.57, 189798.27},
		{"icpc", func() *Detector { return mustDetector(t, sampleICPC()) }, 24909.58, 396101.05},
		{"coax", func() *Detector { return mustDetector(t, sampleCoax()) }, 22175.20, 311458.78},
		{"cylinder", func() *Detector { return mustDetector(t, sampleCylinder()) }, 15437.48, 126565.82},
	} {
		t.Run(tc.name, func(t *testing.T) {
			detector := tc.build()
			total, err := detector.SurfaceArea()
			require.NoError(t, err)
			assert.InDelta(t, tc.area, total, 0.01)
			assert.InDelta(t, tc.volume, detector.Volume(), 0.01)
		})
	}
}

func TestSurfaceAreaAlwaysPositiveAndFinite(t *testing.T) {
	for _, meta := range allSamples() {
		detector := mustDetector(t, meta)
		total, err := detector.SurfaceArea()
		require.NoError(t, err)
		assert.Greater(t, total, 0.0, meta.Name)
		assert.False(t, math.IsInf(total, 0), meta.Name)

		for i, area := range detector.SurfaceAreas() {
			assert.GreaterOrEqual(t, area, 0.0, "%s segment %d", meta.Name, i)
		}
	}
}

func TestSurfaceAreaByIndices(t *testing.T) {
	detector := mustDetector(t, sampleBeGe())

	areas := detector.SurfaceAreas()
	partial, err := detector.SurfaceArea(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, areas[0]+areas[1], partial, 1e-9)

	_, err = detector.SurfaceArea(99)
	assert.True(t, errors.Is(err, errors.ErrGeometry))
}

func TestSurfaceIndices(t *testing.T) {
	detector := mustDetector(t, sampleBeGe())
	assert.Equal(t, []int{0}, detector.SurfaceIndices(SurfacePPlus))
	assert.Equal(t, []int{1, 2, 3}, detector.SurfaceIndices(SurfacePassive))
	assert.Equal(t, []int{4, 5, 6}, detector.SurfaceIndices(SurfaceNPlus))
	assert.Empty(t, detector.SurfaceIndices(SurfaceNone))
}

func TestMassUsesResolvedDensity(t *testing.T) {
	detector := mustDetector(t, sampleCylinder())
	expected := detector.Volume() / 1000 * material.NaturalDensity
	assert.InDelta(t, expected, detector.Mass(), 1e-9)
}

func TestIsInsidePerVariant(t *testing.T) {
	for _, meta := range allSamples() {
		detector := mustDetector(t, meta)
		height := meta.Geometry.HeightInMM
		radius := meta.Geometry.RadiusInMM

		// Axis point in the crystal bulk. For the icpc sample the top
		// half is bored out, so probe below mid-height; for the coax
		// sample above it.
		zProbe := height / 2
		switch meta.Type {
		case "icpc":
			zProbe = height * 0.45
		case "coax":
			zProbe = height * 0.55
		}

		inside := detector.IsInside([]geometry.Vec3D{
			{X: 0, Y: 0, Z: zProbe},
			{X: 3 * radius, Y: 0, Z: height / 2},
			{X: 0, Y: 0, Z: -2 * height},
			{X: radius, Y: 0, Z: height / 2}, // on the mantle
		})
		assert.True(t, inside[0], "%s axis point", meta.Name)
		assert.False(t, inside[1], "%s far outside", meta.Name)
		assert.False(t, inside[2], "%s below", meta.Name)
		assert.True(t, inside[3], "%s boundary", meta.Name)
	}
}

func TestIsInsideBoreholes(t *testing.T) {
	icpc := mustDetector(t, sampleICPC())
	// bore runs from the top face down to z = 50 at r < 5
	inside := icpc.IsInside([]geometry.Vec3D{
		{X: 0, Y: 0, Z: 70},
		{X: 0, Y: 0, Z: 40},
	})
	assert.False(t, inside[0])
	assert.True(t, inside[1])

	coax := mustDetector(t, sampleCoax())
	// bore runs from the bottom face up to z = 30 at r < 6
	inside = coax.IsInside([]geometry.Vec3D{
		{X: 0, Y: 0, Z: 15},
		{X: 0, Y: 0, Z: 45},
	})
	assert.False(t, inside[0])
	assert.True(t, inside[1])
}

func TestDistanceToSurface(t *testing.T) {
	detector := mustDetector(t, sampleCylinder())

	distances, err := detector.DistanceToSurface([]geometry.Vec3D{
		{X: 0, Y: 0, Z: -5},
		{X: 36.98 + 4, Y: 0, Z: 15},
	}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5, distances[0], 1e-9)
	assert.InDelta(t, 4, distances[1], 1e-9)
}

func TestDistanceToElectrode(t *testing.T) {
	detector := mustDetector(t, sampleBeGe())

	// distance to the p+ contact only, from a point above the contact
	distances, err := detector.DistanceToSurface(
		[]geometry.Vec3D{{X: 0, Y: 0, Z: 10}},
		detector.SurfaceIndices(SurfacePPlus),
	)
	require.NoError(t, err)
	assert.InDelta(t, 10, distances[0], 1e-9)
}

// Independent shell-integration reference for the revolved volume.
func TestVolumeMatchesShellIntegration(t *testing.T) {
	detector := mustDetector(t, sampleBeGe())
	r, z := detector.Profile()

	rMax, zMin, zMax := 0.0, math.Inf(1), math.Inf(-1)
	for i := range r {
		rMax = math.Max(rMax, r[i])
		zMin = math.Min(zMin, z[i])
		zMax = math.Max(zMax, z[i])
	}

	const n = 200
	dr := rMax / n
	dz := (zMax - zMin) / n

	points := make([]geometry.Vec3D, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			points = append(points, geometry.Vec3D{
				X: (float64(i) + 0.5) * dr,
				Z: zMin + (float64(j)+0.5)*dz,
			})
		}
	}
	inside := detector.IsInside(points)

	reference := 0.0
	for k, point := range points {
		if inside[k] {
			reference += 2 * math.Pi * point.X * dr * dz
		}
	}
	assert.InEpsilon(t, detector.Volume(), reference, 0.01)
}
