package hpge

import (
	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

// appendContactAndGroove lays down the shared p+ contact and groove
// base common to bege, ppc and icpc profiles. Zero-extent contacts and
// grooves collapse without extra vertices.
func appendContactAndGroove(p *recorder, c *metadata.Geometry) {
	grooveInner := c.Groove.RadiusInMM.Inner
	hasGroove := c.Groove.DepthInMM > 0
	contact := c.PPContact

	switch {
	case contact.DepthInMM > 0:
		p.start(0, contact.DepthInMM)
		p.add(contact.RadiusInMM, contact.DepthInMM, SurfacePPlus)
		p.add(contact.RadiusInMM, 0, SurfacePassive)
		if hasGroove && contact.RadiusInMM < grooveInner {
			p.add(grooveInner, 0, SurfacePassive)
		}
	case contact.RadiusInMM == 0:
		p.start(0, 0)
		if hasGroove {
			p.add(grooveInner, 0, SurfacePassive)
		}
	case hasGroove && contact.RadiusInMM < grooveInner:
		p.start(0, 0)
		p.add(contact.RadiusInMM, 0, SurfacePPlus)
		p.add(grooveInner, 0, SurfacePassive)
	default:
		p.start(0, 0)
		p.add(contact.RadiusInMM, 0, SurfacePPlus)
	}

	if hasGroove {
		p.add(grooveInner, c.Groove.DepthInMM, SurfacePassive)
		p.add(c.Groove.RadiusInMM.Outer, c.Groove.DepthInMM, SurfacePassive)
		p.add(c.Groove.RadiusInMM.Outer, 0, SurfacePassive)
	}
}

// taperHeight returns the effective axial extent of a chamfer; a zero
// angle or height is a no-op.
func taperHeight(t metadata.TaperSpec) float64 {
	if t.HeightInMM > 0 && t.AngleInDeg > 0 {
		return t.HeightInMM
	}
	return 0
}

// appendBottomTaper adds the bottom outer chamfer, or the plain bottom
// outer corner. The tapered radius must stay above minRadius.
func appendBottomTaper(p *recorder, c *metadata.Geometry, minRadius float64, bottomFace Surface) error {
	t := c.Taper.Bottom
	if h := taperHeight(t); h > 0 {
		taperedRadius := c.RadiusInMM - h*tanDeg(t.AngleInDeg)
		if taperedRadius <= minRadius {
			return errors.Geometry("geometry.taper.bottom",
				"tapered radius %g collapses below %g", taperedRadius, minRadius)
		}
		p.add(taperedRadius, 0, bottomFace)
		p.add(c.RadiusInMM, h, SurfaceNPlus)
		return nil
	}
	p.add(c.RadiusInMM, 0, bottomFace)
	return nil
}

// appendTopTaper adds the side wall up to the top edge, with the top
// outer chamfer when present, and returns the profile radius at the top
// face.
func appendTopTaper(p *recorder, c *metadata.Geometry) (float64, error) {
	t := c.Taper.Top
	if h := taperHeight(t); h > 0 {
		taperedRadius := c.RadiusInMM - h*tanDeg(t.AngleInDeg)
		if taperedRadius <= 0 {
			return 0, errors.Geometry("geometry.taper.top",
				"tapered radius %g must remain positive", taperedRadius)
		}
		p.add(c.RadiusInMM, c.HeightInMM-h, SurfaceNPlus)
		p.add(taperedRadius, c.HeightInMM, SurfaceNPlus)
		return taperedRadius, nil
	}
	p.add(c.RadiusInMM, c.HeightInMM, SurfaceNPlus)
	return c.RadiusInMM, nil
}

// baseMinRadius is the largest radius already occupied on the bottom
// face, which a bottom taper must not cross.
func baseMinRadius(c *metadata.Geometry) float64 {
	if c.Groove.DepthInMM > 0 {
		return c.Groove.RadiusInMM.Outer
	}
	return c.PPContact.RadiusInMM
}
