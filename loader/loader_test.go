// SPDX-License-Identifier: MIT

package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/core"
	"github.com/katalvlaran/cliquer/loader"
)

func TestRead_PlainEdgeList(t *testing.T) {
	in := "# comment\n1 2\n\n  2 3  \n% also a comment\n3 1 0.5\n"
	edges, err := loader.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 1}}, edges)
}

func TestRead_MatrixMarket(t *testing.T) {
	in := "%%MatrixMarket matrix coordinate pattern symmetric\n% dolphins\n62 62 159\n11 1\n15 1\n"
	edges, err := loader.Read(strings.NewReader(in), loader.WithMatrixMarket())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 11, V: 1}, {U: 15, V: 1}}, edges)

	// Without the option the square size header reads as a self-loop.
	edges, err = loader.Read(strings.NewReader(in))
	assert.Nil(t, edges)
	require.ErrorIs(t, err, loader.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 3")

	// A non-square header is taken for an ordinary edge.
	rect := "%%MatrixMarket matrix coordinate pattern general\n62 61 159\n11 1\n"
	edges, err = loader.Read(strings.NewReader(rect))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 62, V: 61}, {U: 11, V: 1}}, edges)
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line string
	}{
		{"single token", "1 2\n3\n", "line 2"},
		{"not an integer", "1 2\n2 x\n", "line 2"},
		{"float vertex", "1.5 2\n", "line 1"},
		{"self loop", "# c\n4 4\n", "line 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := loader.Read(strings.NewReader(tc.in))
			assert.Nil(t, edges)
			require.ErrorIs(t, err, loader.ErrMalformedInput)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestRead_LineTooLong(t *testing.T) {
	in := "1 2\n" + strings.Repeat("9", 200) + " 1\n"
	_, err := loader.Read(strings.NewReader(in), loader.WithMaxLineBytes(64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad_BuildsGraph(t *testing.T) {
	g, err := loader.Load(strings.NewReader("1 2\n2 3\n1 3\n1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 1))

	g, err = loader.Load(strings.NewReader("1 2\nbad\n"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, loader.ErrMalformedInput)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("5 6\n6 7\n"), 0o600))

	edges, err := loader.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	g, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7}, g.Vertices())

	_, err = loader.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_RoundTrip(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(25, 0.2))

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))

	edges, err := loader.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), edges)
}

func TestLoad_IsolatedDirective(t *testing.T) {
	g, err := loader.Load(strings.NewReader("1 2\n% isolated 9\n% isolated 1\n% other comment\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 9}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())

	// Read returns edges only.
	edges, err := loader.Read(strings.NewReader("1 2\n% isolated 9\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 1, V: 2}}, edges)

	_, err = loader.Load(strings.NewReader("% isolated nine\n"))
	require.ErrorIs(t, err, loader.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 1")
}

func TestWriteLoad_KeepsIsolatedVertices(t *testing.T) {
	for _, g := range []*core.Graph{
		builder.MustBuild(nil, builder.Isolated(4)),
		builder.MustBuild([]builder.BuilderOption{builder.WithSeed(2)}, builder.RandomSparse(30, 0.05)),
	} {
		var buf bytes.Buffer
		require.NoError(t, loader.Write(&buf, g))

		got, err := loader.Load(&buf)
		require.NoError(t, err)
		assert.Equal(t, g.Vertices(), got.Vertices())
		assert.Equal(t, g.Edges(), got.Edges())
	}
}

func TestWrite_IsolatedAsComments(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdges(core.Edge{U: 1, V: 2}))
	g.AddVertex(9)

	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, g))
	assert.Equal(t, "% cliquer edge list: 3 vertices, 1 edges\n1 2\n% isolated 9\n", buf.String())
}
