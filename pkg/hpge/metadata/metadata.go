// Package metadata models the declarative detector-metadata records
// describing HPGe dimensions and material composition.
package metadata

import (
	"encoding/json"
	"os"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
)

// DetectorType is the enumerated tag selecting the geometry variant.
type DetectorType string

// Supported detector type tags.
const (
	TypeBeGe    DetectorType = "bege"
	TypePPC     DetectorType = "ppc"
	TypeICPC    DetectorType = "icpc"
	TypeCoax    DetectorType = "coax"
	TypeSpecial DetectorType = "special"
)

var knownTypes = map[DetectorType]bool{
	TypeBeGe:    true,
	TypePPC:     true,
	TypeICPC:    true,
	TypeCoax:    true,
	TypeSpecial: true,
}

// UnmarshalJSON rejects unknown type tags.
func (t *DetectorType) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if !knownTypes[DetectorType(raw)] {
		return errors.UnsupportedType(raw)
	}
	*t = DetectorType(raw)
	return nil
}

// Metadata is the immutable description of a single detector.
type Metadata struct {
	Name       string       `json:"name"`
	Type       DetectorType `json:"type"`
	Production Production   `json:"production,omitempty"`
	Geometry   Geometry     `json:"geometry"`
}

// Production carries material composition hints.
type Production struct {
	// Enrichment is the Ge-76 atomic fraction with its uncertainty.
	// Absent enrichment means natural germanium.
	Enrichment *Quantity `json:"enrichment,omitempty"`

	// MassInG is the measured crystal mass, informational only.
	MassInG float64 `json:"mass_in_g,omitempty"`
}

// Quantity is a value with a symmetric uncertainty.
type Quantity struct {
	Val float64 `json:"val"`
	Unc float64 `json:"unc,omitempty"`
}

// Geometry holds the dimensional parameters, all lengths in mm and
// angles in degrees.
type Geometry struct {
	HeightInMM float64   `json:"height_in_mm"`
	RadiusInMM float64   `json:"radius_in_mm"`
	Groove     Groove    `json:"groove,omitempty"`
	PPContact  PPContact `json:"pp_contact"`
	Taper      Taper     `json:"taper,omitempty"`
	Borehole   Borehole  `json:"borehole,omitempty"`
}

// Groove is the annular recess near the detector base.
type Groove struct {
	DepthInMM  float64      `json:"depth_in_mm"`
	RadiusInMM GrooveRadius `json:"radius_in_mm"`
}

// GrooveRadius is the radial extent of the groove.
type GrooveRadius struct {
	Outer float64 `json:"outer"`
	Inner float64 `json:"inner"`
}

// PPContact is the point-contact electrode region.
type PPContact struct {
	RadiusInMM float64 `json:"radius_in_mm"`
	DepthInMM  float64 `json:"depth_in_mm"`
}

// Taper groups the conical chamfers of the crystal.
type Taper struct {
	Top      TaperSpec `json:"top,omitempty"`
	Bottom   TaperSpec `json:"bottom,omitempty"`
	Borehole TaperSpec `json:"borehole,omitempty"`
}

// TaperSpec is a single chamfer, defined by angle and axial height.
type TaperSpec struct {
	AngleInDeg float64 `json:"angle_in_deg"`
	HeightInMM float64 `json:"height_in_mm"`
}

// Borehole is the coaxial bore, drilled from the top for icpc and from
// the bottom for coax detectors.
type Borehole struct {
	RadiusInMM float64 `json:"radius_in_mm"`
	DepthInMM  float64 `json:"depth_in_mm"`
}

// FromJSON parses and validates a metadata record.
func FromJSON(data []byte) (*Metadata, error) {
	meta := &Metadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		if errors.Is(err, errors.ErrUnsupportedType) {
			return nil, err
		}
		return nil, errors.Validation("", "malformed metadata document: %v", err)
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return meta, nil
}

// FromFile parses and validates a metadata record from a JSON document.
func FromFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Validation("", "reading metadata file: %v", err)
	}
	return FromJSON(data)
}
