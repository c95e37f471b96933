package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquer/internal/app"
	"github.com/katalvlaran/cliquer/internal/cli"
	"github.com/katalvlaran/cliquer/internal/config"
	"github.com/katalvlaran/cliquer/loader"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	streams := app.Streams{In: strings.NewReader(stdin), Out: &out, Err: &errBuf}
	err = cli.Execute(context.Background(), streams, args)

	return out.String(), errBuf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const triangleWithTail = "1 2\n2 3\n1 3\n3 4\n"

func TestRun_BothVariantsAndClustering(t *testing.T) {
	path := writeFile(t, "g.txt", triangleWithTail)
	out, _, err := execute(t, "", "run", path, "--log-level", "error")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "2 maximal cliques found"))
	assert.Contains(t, out, "{1, 2, 3}\n{3, 4}\n")
	assert.Contains(t, out, "Clustering")
}

func TestCliques_VariantFlag(t *testing.T) {
	out, _, err := execute(t, triangleWithTail, "cliques", "-", "--variant", "pivot", "--pivot", "first", "--format", "yaml")
	require.NoError(t, err)

	var got struct {
		Enumerations []struct {
			Variant string  `yaml:"variant"`
			Pivot   string  `yaml:"pivot"`
			Cliques [][]int `yaml:"cliques"`
		} `yaml:"enumerations"`
		Clustering any `yaml:"clustering"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Enumerations, 1)
	assert.Equal(t, "pivot", got.Enumerations[0].Variant)
	assert.Equal(t, "first", got.Enumerations[0].Pivot)
	assert.Equal(t, [][]int{{1, 2, 3}, {3, 4}}, got.Enumerations[0].Cliques)
	assert.Nil(t, got.Clustering)
}

func TestCliques_BothVariantsAndPivotAlias(t *testing.T) {
	out, _, err := execute(t, triangleWithTail, "cliques", "-", "--variant", "plain,pivot", "--pivot", "tomita")
	require.NoError(t, err)
	assert.Contains(t, out, "Bron–Kerbosch (plain)")
	assert.Contains(t, out, "Bron–Kerbosch (pivot, tomita pivot)")
}

func TestClustering_JSON(t *testing.T) {
	out, _, err := execute(t, triangleWithTail, "clustering", "-", "--format", "json", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, `"triangles": 1`)
	assert.Contains(t, out, `"local"`)
	assert.NotContains(t, out, "enumerations")
}

func TestConfigFile_FlagsOverride(t *testing.T) {
	cfgPath := writeFile(t, "cliquer.yaml", "output:\n  format: json\nenumerate:\n  variants: [plain]\n")

	out, _, err := execute(t, triangleWithTail, "cliques", "-", "--config", cfgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "json from config file")
	assert.Contains(t, out, `"variant": "plain"`)

	out, _, err = execute(t, triangleWithTail, "cliques", "-", "--config", cfgPath, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "2 maximal cliques found")
}

func TestErrors(t *testing.T) {
	bad := writeFile(t, "bad.txt", "1 2\n3\n")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"malformed input", []string{"run", bad}, loader.ErrMalformedInput},
		{"invalid format", []string{"run", bad, "--format", "xml"}, config.ErrInvalidConfig},
		{"invalid variant", []string{"cliques", bad, "--variant", "tomita"}, config.ErrInvalidConfig},
		{"invalid workers", []string{"run", bad, "--workers", "0"}, config.ErrInvalidConfig},
		{"unknown kind", []string{"generate", "--kind", "petersen"}, app.ErrUnknownKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out)
		})
	}

	_, _, err := execute(t, "", "run")
	assert.Error(t, err, "missing file argument")
}

func TestGenerate_FeedsRun(t *testing.T) {
	edges, _, err := execute(t, "", "generate", "--kind", "complete", "--n", "5")
	require.NoError(t, err)

	out, _, err := execute(t, edges, "run", "-", "--workers", "3", "--pivot", "maxdegree")
	require.NoError(t, err)
	assert.Contains(t, out, "1 maximal cliques found")
	assert.Contains(t, out, "{0, 1, 2, 3, 4}")
	assert.Contains(t, out, "average coefficient 1.000000")
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, _, err := execute(t, "", "generate", "--n", "20", "--p", "0.3", "--seed", "9")
	require.NoError(t, err)
	b, _, err := execute(t, "", "generate", "--n", "20", "--p", "0.3", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
