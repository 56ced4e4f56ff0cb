package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/material"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/solid"
)

// Detector wraps one built profile and exposes the derived geometric
// queries. Instances are immutable after construction; all queries are
// pure reads, safe for concurrent use.
type Detector struct {
	name     string
	meta     metadata.Metadata
	profile  geometry.Profile
	surfaces []Surface
	material material.Germanium

	// Non-owning back-reference to the externally materialized solid.
	registry  *solid.Registry
	solidName string
}

// Name returns the detector name.
func (d *Detector) Name() string {
	return d.name
}

// Metadata returns a copy of the originating metadata record.
func (d *Detector) Metadata() metadata.Metadata {
	return d.meta
}

// Profile returns the (r, z) coordinate lists of the polycone
// cross-section, in construction order.
func (d *Detector) Profile() (r, z []float64) {
	return d.profile.Clone()
}

// Surfaces returns the surface label of each profile segment, aligned
// 1:1 with consecutive vertex pairs.
func (d *Detector) Surfaces() []Surface {
	return append([]Surface(nil), d.surfaces...)
}

// SurfaceIndices returns the segment indices carrying the given
// surface type.
func (d *Detector) SurfaceIndices(surface Surface) []int {
	indices := []int{}
	for i, s := range d.surfaces {
		if s == surface {
			indices = append(indices, i)
		}
	}
	return indices
}

// SurfaceAreas returns the per-segment lateral areas, in mm², of the
// revolved profile.
func (d *Detector) SurfaceAreas() []float64 {
	return d.profile.SegmentAreas()
}

// SurfaceArea sums segment areas in mm². Without indices the full
// surface is summed.
func (d *Detector) SurfaceArea(indices ...int) (float64, error) {
	areas := d.profile.SegmentAreas()
	if len(indices) == 0 {
		total := 0.0
		for _, a := range areas {
			total += a
		}
		return total, nil
	}
	total := 0.0
	for _, i := range indices {
		if i < 0 || i >= len(areas) {
			return 0, errors.Geometry("profile", "segment index %d out of range [0, %d)", i, len(areas))
		}
		total += areas[i]
	}
	return total, nil
}

// Volume returns the solid-of-revolution volume in mm³.
func (d *Detector) Volume() float64 {
	return d.profile.Volume()
}

// Mass returns the crystal mass in g, from the revolved volume and the
// resolved germanium density.
func (d *Detector) Mass() float64 {
	return d.profile.Volume() / 1000 * d.material.Density
}

// Material returns the resolved germanium description.
func (d *Detector) Material() material.Germanium {
	return d.material
}

// IsInside reports, for each 3D point, whether it lies inside the
// detector. Points on the surface count as inside.
func (d *Detector) IsInside(points []geometry.Vec3D) []bool {
	return d.profile.Contains(points)
}

// DistanceToSurface returns, for each 3D point, the distance to the
// nearest detector surface. A non-empty indices list restricts the
// search to those segments, e.g. the p+ electrode via SurfaceIndices.
func (d *Detector) DistanceToSurface(points []geometry.Vec3D, indices []int) ([]float64, error) {
	return d.profile.DistanceToSegments(points, indices)
}

// Solid resolves the externally materialized solid through the
// registry supplied at construction.
func (d *Detector) Solid() (*solid.Solid, error) {
	if d.registry == nil {
		return nil, errors.Configuration("detector %q was constructed without a solid registry", d.name)
	}
	return d.registry.Lookup(d.solidName)
}
