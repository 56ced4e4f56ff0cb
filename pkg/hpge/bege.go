package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// buildBeGe computes the profile of a broad-energy germanium detector:
// p+ point contact and groove on the bottom face, optional outer
// chamfers, n+ lithium contact elsewhere.
func buildBeGe(meta *metadata.Metadata) (geometry.Profile, []Surface, error) {
	c := &meta.Geometry
	p := &recorder{}

	appendContactAndGroove(p, c)
	if err := appendBottomTaper(p, c, baseMinRadius(c), SurfaceNPlus); err != nil {
		return geometry.Profile{}, nil, err
	}
	if _, err := appendTopTaper(p, c); err != nil {
		return geometry.Profile{}, nil, err
	}
	p.add(0, c.HeightInMM, SurfaceNPlus)

	return p.profile()
}
