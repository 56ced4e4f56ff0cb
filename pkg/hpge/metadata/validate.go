package metadata

import (
	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/validate"
)

// Validate checks that the record is complete and dimensionally
// consistent for its detector type. It reports an ErrValidation kind
// error naming the first offending field.
func (m *Metadata) Validate() error {
	if m.Name == "" {
		return errors.Validation("name", "missing detector name")
	}
	if m.Type == "" {
		return errors.Validation("type", "missing detector type")
	}
	if !knownTypes[m.Type] {
		return errors.UnsupportedType(string(m.Type))
	}

	c := &m.Geometry
	if c.HeightInMM <= 0 {
		return errors.Validation("geometry.height_in_mm", "must be positive, got %g", c.HeightInMM)
	}
	if c.RadiusInMM <= 0 {
		return errors.Validation("geometry.radius_in_mm", "must be positive, got %g", c.RadiusInMM)
	}

	for _, check := range []struct {
		field string
		value float64
	}{
		{"geometry.groove.depth_in_mm", c.Groove.DepthInMM},
		{"geometry.groove.radius_in_mm.inner", c.Groove.RadiusInMM.Inner},
		{"geometry.groove.radius_in_mm.outer", c.Groove.RadiusInMM.Outer},
		{"geometry.pp_contact.radius_in_mm", c.PPContact.RadiusInMM},
		{"geometry.pp_contact.depth_in_mm", c.PPContact.DepthInMM},
		{"geometry.taper.top.height_in_mm", c.Taper.Top.HeightInMM},
		{"geometry.taper.bottom.height_in_mm", c.Taper.Bottom.HeightInMM},
		{"geometry.taper.borehole.height_in_mm", c.Taper.Borehole.HeightInMM},
		{"geometry.borehole.radius_in_mm", c.Borehole.RadiusInMM},
		{"geometry.borehole.depth_in_mm", c.Borehole.DepthInMM},
	} {
		if !validate.NonNegative(check.value) {
			return errors.Validation(check.field, "must be non-negative, got %g", check.value)
		}
	}

	for _, check := range []struct {
		field string
		value float64
	}{
		{"geometry.taper.top.angle_in_deg", c.Taper.Top.AngleInDeg},
		{"geometry.taper.bottom.angle_in_deg", c.Taper.Bottom.AngleInDeg},
		{"geometry.taper.borehole.angle_in_deg", c.Taper.Borehole.AngleInDeg},
	} {
		if !validate.TaperAngle(check.value) {
			return errors.Validation(check.field, "must be in [0, 90) degrees, got %g", check.value)
		}
	}

	if err := m.validateGroove(); err != nil {
		return err
	}
	if err := m.validateAxialExtents(); err != nil {
		return err
	}
	if err := m.validateBorehole(); err != nil {
		return err
	}

	if m.Production.Enrichment != nil && !validate.Fraction(m.Production.Enrichment.Val) {
		return errors.Validation("production.enrichment.val", "fraction must be in [0, 1], got %g", m.Production.Enrichment.Val)
	}

	return nil
}

// HasGroove reports whether the groove carries any extent.
func (m *Metadata) HasGroove() bool {
	return m.Geometry.Groove.DepthInMM > 0
}

// HasBorehole reports whether the borehole carries any extent.
func (m *Metadata) HasBorehole() bool {
	return m.Geometry.Borehole.DepthInMM > 0 && m.Geometry.Borehole.RadiusInMM > 0
}

func (m *Metadata) validateGroove() error {
	c := &m.Geometry
	if !m.HasGroove() {
		return nil
	}
	g := c.Groove.RadiusInMM
	if g.Inner <= 0 {
		return errors.Validation("geometry.groove.radius_in_mm.inner", "must be positive for a grooved detector, got %g", g.Inner)
	}
	if g.Outer <= g.Inner {
		return errors.Validation("geometry.groove.radius_in_mm.outer", "outer radius %g must exceed inner radius %g", g.Outer, g.Inner)
	}
	if g.Outer >= c.RadiusInMM {
		return errors.Validation("geometry.groove.radius_in_mm.outer", "outer radius %g must stay below the detector radius %g", g.Outer, c.RadiusInMM)
	}
	if c.PPContact.RadiusInMM > g.Inner {
		return errors.Validation("geometry.pp_contact.radius_in_mm", "contact radius %g exceeds the groove inner radius %g", c.PPContact.RadiusInMM, g.Inner)
	}
	return nil
}

func (m *Metadata) validateAxialExtents() error {
	c := &m.Geometry
	if c.Groove.DepthInMM >= c.HeightInMM {
		return errors.Validation("geometry.groove.depth_in_mm", "groove depth %g exceeds the detector height %g", c.Groove.DepthInMM, c.HeightInMM)
	}
	if c.PPContact.DepthInMM > 0 && c.PPContact.RadiusInMM <= 0 {
		return errors.Validation("geometry.pp_contact.radius_in_mm", "contact with depth %g needs a positive radius", c.PPContact.DepthInMM)
	}
	if c.PPContact.DepthInMM >= c.HeightInMM {
		return errors.Validation("geometry.pp_contact.depth_in_mm", "contact depth %g exceeds the detector height %g", c.PPContact.DepthInMM, c.HeightInMM)
	}
	if c.Taper.Top.HeightInMM+c.Taper.Bottom.HeightInMM > c.HeightInMM {
		return errors.Validation("geometry.taper", "top and bottom taper heights %g + %g exceed the detector height %g",
			c.Taper.Top.HeightInMM, c.Taper.Bottom.HeightInMM, c.HeightInMM)
	}
	return nil
}

func (m *Metadata) validateBorehole() error {
	c := &m.Geometry
	if !m.HasBorehole() {
		if c.Taper.Borehole.HeightInMM > 0 {
			return errors.Validation("geometry.taper.borehole.height_in_mm", "borehole taper without a borehole")
		}
		return nil
	}
	if c.Borehole.DepthInMM >= c.HeightInMM {
		return errors.Validation("geometry.borehole.depth_in_mm", "borehole depth %g exceeds the detector height %g", c.Borehole.DepthInMM, c.HeightInMM)
	}
	if c.Borehole.RadiusInMM >= c.RadiusInMM {
		return errors.Validation("geometry.borehole.radius_in_mm", "borehole radius %g exceeds the detector radius %g", c.Borehole.RadiusInMM, c.RadiusInMM)
	}
	if c.Taper.Borehole.HeightInMM > c.Borehole.DepthInMM {
		return errors.Validation("geometry.taper.borehole.height_in_mm", "borehole taper height %g exceeds the borehole depth %g",
			c.Taper.Borehole.HeightInMM, c.Borehole.DepthInMM)
	}
	return nil
}
