package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/clique"
)

func TestVariant_StringAndParse(t *testing.T) {
	assert.Equal(t, "plain", clique.Plain.String())
	assert.Equal(t, "pivot", clique.Pivot.String())
	assert.Equal(t, "variant(7)", clique.Variant(7).String())

	v, err := clique.ParseVariant(" Pivot ")
	require.NoError(t, err)
	assert.Equal(t, clique.Pivot, v)

	_, err = clique.ParseVariant("tomita")
	assert.ErrorIs(t, err, clique.ErrUnknownVariant)
}

func TestClique_StringContains(t *testing.T) {
	c := clique.Clique{1, 2, 30}
	assert.Equal(t, "{1, 2, 30}", c.String())
	assert.Equal(t, "{}", clique.Clique{}.String())
	assert.True(t, c.Contains(30))
	assert.False(t, c.Contains(3))
}

func TestCanonicalize(t *testing.T) {
	got := clique.Canonicalize([]clique.Clique{{3, 2}, {1, 5}, {1}, {2, 1, 4}})
	assert.Equal(t, []clique.Clique{{1}, {1, 2, 4}, {1, 5}, {2, 3}}, got)
}

func TestIsCliqueIsMaximal(t *testing.T) {
	g := graphOf(t, [][2]int{{1, 2}, {2, 3}, {1, 3}, {3, 4}})

	assert.True(t, clique.IsClique(g, clique.Clique{1, 2, 3}))
	assert.True(t, clique.IsClique(g, clique.Clique{4}))
	assert.False(t, clique.IsClique(g, clique.Clique{1, 4}))

	assert.True(t, clique.IsMaximal(g, clique.Clique{1, 2, 3}))
	assert.True(t, clique.IsMaximal(g, clique.Clique{3, 4}))
	assert.False(t, clique.IsMaximal(g, clique.Clique{1, 2}))
	assert.False(t, clique.IsMaximal(g, clique.Clique{1, 4}))
}

func TestWithWorkers_Clamp(t *testing.T) {
	o := clique.DefaultOptions()
	clique.WithWorkers(0)(&o)
	assert.Equal(t, 1, o.Workers)
	clique.WithWorkers(8)(&o)
	assert.Equal(t, 8, o.Workers)

	clique.WithPivot(nil)(&o)
	assert.NotNil(t, o.Pivot)
}
