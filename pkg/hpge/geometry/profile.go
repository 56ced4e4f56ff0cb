// Package geometry provides the revolved polycone profile and its
// derived numeric queries.
package geometry

import (
	"math"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
)

// Vec3D is a point in 3D cartesian space, in mm.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RZ projects the point onto the (r, z) half-plane of the revolution axis.
func (v Vec3D) RZ() (float64, float64) {
	return math.Hypot(v.X, v.Y), v.Z
}

// Profile is an ordered (r, z) vertex list, in mm, describing the half
// cross-section of a solid of revolution around the z-axis. The polyline
// starts and ends on the axis (r = 0) and is closed implicitly along it.
type Profile struct {
	R []float64
	Z []float64
}

// NewProfile validates and wraps the coordinate lists.
func NewProfile(r, z []float64) (Profile, error) {
	if len(r) != len(z) {
		return Profile{}, errors.Geometry("profile", "coordinate count mismatch: %d r vs %d z", len(r), len(z))
	}
	if len(r) < 3 {
		return Profile{}, errors.Geometry("profile", "need at least 3 vertices, got %d", len(r))
	}
	for i := range r {
		if r[i] < 0 {
			return Profile{}, errors.Geometry("profile", "negative radius %g at vertex %d", r[i], i)
		}
	}
	return Profile{R: r, Z: z}, nil
}

// Len returns the vertex count.
func (p Profile) Len() int {
	return len(p.R)
}

// Segments returns the segment count, one less than the vertex count.
func (p Profile) Segments() int {
	return len(p.R) - 1
}

// Clone returns a deep copy, keeping detectors immutable when the
// profile is handed out.
func (p Profile) Clone() (r, z []float64) {
	r = append([]float64(nil), p.R...)
	z = append([]float64(nil), p.Z...)
	return r, z
}

// BoundingCylinder returns the maximal radius and the z extent.
func (p Profile) BoundingCylinder() (rMax, zMin, zMax float64) {
	zMin = math.Inf(1)
	zMax = math.Inf(-1)
	for i := range p.R {
		rMax = math.Max(rMax, p.R[i])
		zMin = math.Min(zMin, p.Z[i])
		zMax = math.Max(zMax, p.Z[i])
	}
	return rMax, zMin, zMax
}
