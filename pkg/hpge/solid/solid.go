// Package solid materializes detector profiles through the sdfx
// solid-modeling toolkit. Meshing, rendering and export formats are the
// toolkit's business; this package only hands profiles over.
package solid

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// Solid wraps a materialized solid of revolution.
type Solid struct {
	Name string
	sdf3 sdf.SDF3
}

// Revolve materializes the (r, z) profile as a 3D solid, revolving the
// closed cross-section 360° around the z-axis.
func Revolve(name string, profile geometry.Profile) (*Solid, error) {
	vertices := make([]v2.Vec, 0, profile.Len())
	for i := 0; i < profile.Len(); i++ {
		vertices = append(vertices, v2.Vec{X: profile.R[i], Y: profile.Z[i]})
	}

	polygon, err := sdf.Polygon2D(vertices)
	if err != nil {
		return nil, errors.Geometry("profile", "building cross-section polygon: %v", err)
	}
	sdf3, err := sdf.Revolve3D(polygon)
	if err != nil {
		return nil, errors.Geometry("profile", "revolving cross-section: %v", err)
	}
	return &Solid{Name: name, sdf3: sdf3}, nil
}

// BoundingBox returns the axis-aligned bounding box.
func (s *Solid) BoundingBox() (min, max [3]float64) {
	bb := s.sdf3.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

// ExportSTL tessellates the solid with marching cubes and writes an STL
// file. cells <= 0 selects the default resolution.
func (s *Solid) ExportSTL(path string, cells int) {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	render.ToSTL(s.sdf3, path, render.NewMarchingCubesUniform(cells))
}
