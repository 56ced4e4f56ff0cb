package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/metadata"
)

func TestNatural(t *testing.T) {
	ge := Natural()
	assert.Equal(t, "NaturalGermanium", ge.Name)
	assert.Equal(t, NaturalDensity, ge.Density)
	require.Len(t, ge.Isotopes, 5)

	total := 0.0
	for _, iso := range ge.Isotopes {
		total += iso.Fraction
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestEnrichedDensity(t *testing.T) {
	// Enriched germanium is denser than natural, monotonically in the
	// Ge-76 fraction.
	d090, err := EnrichedDensity(0.90)
	require.NoError(t, err)
	assert.InDelta(t, 5.550157, d090, 1e-5)

	d092, err := EnrichedDensity(0.92)
	require.NoError(t, err)
	assert.Greater(t, d092, d090)
	assert.Greater(t, d090, NaturalDensity)
}

func TestEnrichedDensityRejectsBadFraction(t *testing.T) {
	_, err := EnrichedDensity(1.5)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))

	_, err = EnrichedDensity(-0.1)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestEnriched(t *testing.T) {
	ge, err := Enriched(0.9)
	require.NoError(t, err)
	assert.Equal(t, "EnrichedGermanium0.900", ge.Name)
	require.Len(t, ge.Isotopes, 2)
	assert.InDelta(t, 0.1, ge.Isotopes[0].Fraction, 1e-9)
	assert.InDelta(t, 0.9, ge.Isotopes[1].Fraction, 1e-9)
}

func TestResolve(t *testing.T) {
	ge, err := Resolve(metadata.Production{})
	require.NoError(t, err)
	assert.Equal(t, "NaturalGermanium", ge.Name)

	ge, err = Resolve(metadata.Production{Enrichment: &metadata.Quantity{Val: 0.9}})
	require.NoError(t, err)
	assert.Equal(t, "EnrichedGermanium0.900", ge.Name)

	_, err = Resolve(metadata.Production{Enrichment: &metadata.Quantity{Val: 2}})
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestSerialize(t *testing.T) {
	ge, err := Enriched(0.9)
	require.NoError(t, err)

	expected := "MATERIAL EnrichedGermanium0.900\n" +
		"RHO 5.550157\n" +
		"ISOTOPE Ge74 0.100000\n" +
		"ISOTOPE Ge76 0.900000\n" +
		"END\n"
	assert.Equal(t, expected, Serialize(ge))
}
