package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// buildICPC computes the profile of an inverted-coaxial point contact
// detector: the bege base plus an n+ borehole drilled from the top
// face, with its own optional taper at the mouth.
func buildICPC(meta *metadata.Metadata) (geometry.Profile, []Surface, error) {
	c := &meta.Geometry
	p := &recorder{}

	appendContactAndGroove(p, c)
	if err := appendBottomTaper(p, c, baseMinRadius(c), SurfaceNPlus); err != nil {
		return geometry.Profile{}, nil, err
	}
	topRadius, err := appendTopTaper(p, c)
	if err != nil {
		return geometry.Profile{}, nil, err
	}

	if !meta.HasBorehole() {
		p.add(0, c.HeightInMM, SurfaceNPlus)
		return p.profile()
	}

	bore := c.Borehole
	taper := c.Taper.Borehole
	boreTaperHeight := taperHeight(taper)

	boreMouthRadius := bore.RadiusInMM + boreTaperHeight*tanDeg(taper.AngleInDeg)
	if boreMouthRadius >= topRadius {
		return geometry.Profile{}, nil, errors.Geometry("geometry.taper.borehole",
			"borehole mouth radius %g crosses the outer radius %g at the top face", boreMouthRadius, topRadius)
	}

	if boreTaperHeight > 0 {
		p.add(boreMouthRadius, c.HeightInMM, SurfaceNPlus)
		p.add(bore.RadiusInMM, c.HeightInMM-boreTaperHeight, SurfaceNPlus)
	} else {
		p.add(bore.RadiusInMM, c.HeightInMM, SurfaceNPlus)
	}

	if boreTaperHeight != bore.DepthInMM {
		p.add(bore.RadiusInMM, c.HeightInMM-bore.DepthInMM, SurfaceNPlus)
		p.add(0, c.HeightInMM-bore.DepthInMM, SurfaceNPlus)
	} else {
		p.add(0, c.HeightInMM-bore.DepthInMM, SurfaceNPlus)
	}

	return p.profile()
}
