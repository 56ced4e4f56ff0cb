package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// buildCoax computes the profile of a semi-coaxial detector: p+
// borehole drilled from the bottom face, groove separating it from the
// n+ outer surfaces.
func buildCoax(meta *metadata.Metadata) (geometry.Profile, []Surface, error) {
	c := &meta.Geometry
	p := &recorder{}

	grooveInner := c.Groove.RadiusInMM.Inner
	boreOuterRadius := 0.0

	if meta.HasBorehole() {
		bore := c.Borehole
		taper := c.Taper.Borehole
		boreTaperHeight := taperHeight(taper)

		p.start(0, bore.DepthInMM)
		p.add(bore.RadiusInMM, bore.DepthInMM, SurfacePPlus)

		if boreTaperHeight > 0 {
			boreOuterRadius = bore.RadiusInMM + boreTaperHeight*tanDeg(taper.AngleInDeg)
			limit := c.RadiusInMM
			if meta.HasGroove() {
				limit = grooveInner
			}
			if boreOuterRadius >= limit {
				return geometry.Profile{}, nil, errors.Geometry("geometry.taper.borehole",
					"borehole mouth radius %g crosses the bottom-face radius %g", boreOuterRadius, limit)
			}
			p.add(bore.RadiusInMM, boreTaperHeight, SurfacePPlus)
			p.add(boreOuterRadius, 0, SurfacePPlus)
		} else {
			boreOuterRadius = bore.RadiusInMM
			p.add(bore.RadiusInMM, 0, SurfacePPlus)
		}
	} else {
		p.start(0, 0)
	}

	minRadius := boreOuterRadius
	if meta.HasGroove() {
		if boreOuterRadius >= grooveInner {
			return geometry.Profile{}, nil, errors.Geometry("geometry.borehole.radius_in_mm",
				"borehole radius %g crosses the groove inner radius %g", boreOuterRadius, grooveInner)
		}
		p.add(grooveInner, 0, SurfacePPlus)
		p.add(grooveInner, c.Groove.DepthInMM, SurfacePassive)
		p.add(c.Groove.RadiusInMM.Outer, c.Groove.DepthInMM, SurfacePassive)
		p.add(c.Groove.RadiusInMM.Outer, 0, SurfacePassive)
		minRadius = c.Groove.RadiusInMM.Outer
	}

	if err := appendBottomTaper(p, c, minRadius, SurfaceNPlus); err != nil {
		return geometry.Profile{}, nil, err
	}
	if _, err := appendTopTaper(p, c); err != nil {
		return geometry.Profile{}, nil, err
	}
	p.add(0, c.HeightInMM, SurfaceNPlus)

	return p.profile()
}
