package geometry

import (
	"math"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
)

// boundaryTolerance is the distance, in mm, within which a point counts
// as lying on a profile segment.
const boundaryTolerance = 1e-9

// SegmentAreas returns the lateral area, in mm², generated by revolving
// each profile segment 360° around the z-axis.
//
// Vertical segments (dr = 0) use the cylinder mantle 2π·r·|dz|; all
// others use π·|dr|·√(dr²+dz²), the convention of the upstream
// detector-geometry tooling, which reference areas are quoted against.
func (p Profile) SegmentAreas() []float64 {
	areas := make([]float64, p.Segments())
	for i := range areas {
		dr := p.R[i+1] - p.R[i]
		dz := p.Z[i+1] - p.Z[i]
		if dr == 0 {
			areas[i] = 2 * math.Pi * p.R[i] * math.Abs(dz)
		} else {
			areas[i] = math.Pi * math.Abs(dr) * math.Hypot(dr, dz)
		}
	}
	return areas
}

// Volume returns the solid-of-revolution volume in mm³, summing signed
// conical frustum slices over the closed polygon. The implicit closing
// edge runs along r = 0 and contributes nothing.
func (p Profile) Volume() float64 {
	volume := 0.0
	r1 := p.R[p.Len()-1]
	z1 := p.Z[p.Len()-1]
	for i := 0; i < p.Len(); i++ {
		r2 := p.R[i]
		z2 := p.Z[i]
		volume += (r1*r1 + r1*r2 + r2*r2) * (z2 - z1)
		r1, z1 = r2, z2
	}
	return 2 * math.Pi * math.Abs(volume) / 6
}

// DistanceToSegments returns, for each 3D point, the distance in the
// (r, z) half-plane to the nearest profile segment. A non-empty indices
// list restricts the search to those segments.
func (p Profile) DistanceToSegments(points []Vec3D, indices []int) ([]float64, error) {
	segments, err := p.selectSegments(indices)
	if err != nil {
		return nil, err
	}

	distances := make([]float64, len(points))
	for i, point := range points {
		r, z := point.RZ()
		nearest := math.Inf(1)
		for _, s := range segments {
			d := segmentDistance(p.R[s], p.Z[s], p.R[s+1], p.Z[s+1], r, z)
			nearest = math.Min(nearest, d)
		}
		distances[i] = nearest
	}
	return distances, nil
}

// Contains reports, for each 3D point, whether it lies inside the
// revolved solid. Containment is closed: points on the surface are
// inside.
func (p Profile) Contains(points []Vec3D) []bool {
	inside := make([]bool, len(points))
	for i, point := range points {
		r, z := point.RZ()
		inside[i] = p.contains(r, z)
	}
	return inside
}

func (p Profile) contains(r, z float64) bool {
	// The closed polygon is the profile plus the implicit edge along
	// the axis from the last vertex back to the first.
	n := p.Len()
	crossings := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		r1, z1 := p.R[i], p.Z[i]
		r2, z2 := p.R[j], p.Z[j]

		if segmentDistance(r1, z1, r2, z2, r, z) <= boundaryTolerance {
			return true
		}

		// Horizontal ray in +r direction, crossing rule half-open in z.
		if (z1 > z) == (z2 > z) {
			continue
		}
		rCross := r1 + (z-z1)/(z2-z1)*(r2-r1)
		if rCross > r {
			crossings++
		}
	}
	return crossings%2 == 1
}

func (p Profile) selectSegments(indices []int) ([]int, error) {
	if len(indices) == 0 {
		segments := make([]int, p.Segments())
		for i := range segments {
			segments[i] = i
		}
		return segments, nil
	}
	for _, s := range indices {
		if s < 0 || s >= p.Segments() {
			return nil, errors.Geometry("profile", "segment index %d out of range [0, %d)", s, p.Segments())
		}
	}
	return indices, nil
}

// segmentDistance returns the distance from (r, z) to the segment
// between (r1, z1) and (r2, z2).
func segmentDistance(r1, z1, r2, z2, r, z float64) float64 {
	dr := r2 - r1
	dz := z2 - z1
	lengthSq := dr*dr + dz*dz
	if lengthSq == 0 {
		return math.Hypot(r-r1, z-z1)
	}
	t := ((r-r1)*dr + (z-z1)*dz) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(r-(r1+t*dr), z-(z1+t*dz))
}
