package solid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdixon97/legend-pygeom-hpges/errors"
	"github.com/tdixon97/legend-pygeom-hpges/pkg/hpge/geometry"
)

func cylinderProfile(t *testing.T) geometry.Profile {
	t.Helper()
	profile, err := geometry.NewProfile(
		[]float64{0, 10, 10, 0},
		[]float64{0, 0, 20, 20},
	)
	require.NoError(t, err)
	return profile
}

func TestRevolve(t *testing.T) {
	revolved, err := Revolve("cyl", cylinderProfile(t))
	require.NoError(t, err)
	assert.Equal(t, "cyl", revolved.Name)

	min, max := revolved.BoundingBox()
	assert.InDelta(t, -10, min[0], 1e-6)
	assert.InDelta(t, 10, max[0], 1e-6)
	assert.InDelta(t, 0, min[2], 1e-6)
	assert.InDelta(t, 20, max[2], 1e-6)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.Names())

	_, err := registry.Materialize("det1", cylinderProfile(t))
	require.NoError(t, err)
	_, err = registry.Materialize("det0", cylinderProfile(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"det0", "det1"}, registry.Names())

	revolved, err := registry.Lookup("det1")
	require.NoError(t, err)
	assert.Equal(t, "det1", revolved.Name)

	_, err = registry.Lookup("unknown")
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestMaterializeReplaces(t *testing.T) {
	registry := NewRegistry()
	first, err := registry.Materialize("det", cylinderProfile(t))
	require.NoError(t, err)
	second, err := registry.Materialize("det", cylinderProfile(t))
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	current, err := registry.Lookup("det")
	require.NoError(t, err)
	assert.Same(t, second, current)
}
