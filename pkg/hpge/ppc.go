package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// buildPPC computes the profile of a p-type point contact detector:
// small p+ contact in the centre of the bottom face, the rest of the
// bottom face passivated, n+ contact on the side and top surfaces.
func buildPPC(meta *metadata.Metadata) (geometry.Profile, []Surface, error) {
	c := &meta.Geometry
	p := &recorder{}

	appendContactAndGroove(p, c)
	if err := appendBottomTaper(p, c, baseMinRadius(c), SurfacePassive); err != nil {
		return geometry.Profile{}, nil, err
	}
	if _, err := appendTopTaper(p, c); err != nil {
		return geometry.Profile{}, nil, err
	}
	p.add(0, c.HeightInMM, SurfaceNPlus)

	return p.profile()
}
