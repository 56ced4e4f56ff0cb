// Package material provides germanium material descriptions for use in
// detector geometries.
package material

import (
	"fmt"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
	"github.com/tdixon97/legend-pygeom-hpges/validate"
)

// Molar weight of germanium isotopes in g/mol. Source: NIST.
var isotopeMolarMass = map[int]float64{
	70: 69.924,
	72: 71.922,
	73: 72.923,
	74: 73.921,
	76: 75.921,
}

// Isotopic composition of natural germanium. Source: NIST.
var naturalAbundance = map[int]float64{
	70: 0.2057,
	72: 0.2745,
	73: 0.0775,
	74: 0.3650,
	76: 0.0773,
}

// NaturalDensity is the measured density of natural germanium at room
// temperature, in g/cm³.
const NaturalDensity = 5.3234

// IsotopeFraction is one isotope share of a germanium mixture.
type IsotopeFraction struct {
	A        int
	Fraction float64
}

// Germanium describes a germanium compound by density and isotopic
// composition, ready to hand to the external solid/registry toolkit.
type Germanium struct {
	Name     string
	Density  float64 // g/cm³
	Isotopes []IsotopeFraction
}

// Natural returns the natural germanium description.
func Natural() Germanium {
	isotopes := make([]IsotopeFraction, 0, len(naturalAbundance))
	for _, a := range []int{70, 72, 73, 74, 76} {
		isotopes = append(isotopes, IsotopeFraction{A: a, Fraction: naturalAbundance[a]})
	}
	return Germanium{
		Name:     "NaturalGermanium",
		Density:  NaturalDensity,
		Isotopes: isotopes,
	}
}

// Enriched returns the description of germanium enriched in Ge-76.
// The composition is approximated as a Ge-76/Ge-74 mixture.
func Enriched(ge76Fraction float64) (Germanium, error) {
	density, err := EnrichedDensity(ge76Fraction)
	if err != nil {
		return Germanium{}, err
	}
	return Germanium{
		Name:    fmt.Sprintf("EnrichedGermanium%.3f", ge76Fraction),
		Density: density,
		Isotopes: []IsotopeFraction{
			{A: 74, Fraction: 1 - ge76Fraction},
			{A: 76, Fraction: ge76Fraction},
		},
	}, nil
}

// EnrichedDensity calculates the density of enriched germanium in
// g/cm³, scaling the measured natural density by the ratio of effective
// molar masses at constant number density.
func EnrichedDensity(ge76Fraction float64) (float64, error) {
	if !validate.Fraction(ge76Fraction) {
		return 0, errors.Configuration("enrichment fraction must be in [0, 1], got %g", ge76Fraction)
	}
	massEff := isotopeMolarMass[76]*ge76Fraction + isotopeMolarMass[74]*(1-ge76Fraction)
	return NaturalDensity * massEff / naturalMolarMass(), nil
}

// Resolve derives the detector material from metadata production hints.
// Detectors without an enrichment record are natural germanium.
func Resolve(production metadata.Production) (Germanium, error) {
	if production.Enrichment == nil {
		return Natural(), nil
	}
	return Enriched(production.Enrichment.Val)
}

func naturalMolarMass() float64 {
	mass := 0.0
	for a, fraction := range naturalAbundance {
		mass += isotopeMolarMass[a] * fraction
	}
	return mass
}
