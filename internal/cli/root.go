// Package cli defines the cliquer cobra command tree.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquer/internal/app"
	"github.com/katalvlaran/cliquer/internal/config"
)

// flags mirrors every global flag; only flags the user set override the
// config file.
type flags struct {
	configPath string
	format     string
	logLevel   string
	logFormat  string
	pivot      string
	seed       int64
	workers    int
	mtx        bool
	local      bool
	metricsOut string
}

// NewRootCmd builds the command tree bound to streams.
func NewRootCmd(streams app.Streams) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "cliquer",
		Short: "Maximal cliques and clustering coefficients of undirected graphs",
		Long: `cliquer reads an undirected edge list ("u v" per line, '%' or '#'
comments) and enumerates its maximal cliques with the Bron–Kerbosch
algorithm, with and without pivoting, and computes the average local
clustering coefficient.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.format, "format", "", "output format: text, json or yaml")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&f.pivot, "pivot", "", "pivot strategy: random, maxdegree (aliases max-degree, tomita) or first")
	pf.Int64Var(&f.seed, "seed", 0, "seed for random pivot selection")
	pf.IntVar(&f.workers, "workers", 0, "goroutines expanding top-level branches")
	pf.BoolVar(&f.mtx, "mtx", false, "input is a MatrixMarket file (skip the size header)")
	pf.BoolVar(&f.local, "local", false, "include per-vertex coefficients in the report")
	pf.StringVar(&f.metricsOut, "metrics-out", "", `write prometheus metrics to this file ("-" for stderr)`)

	root.AddCommand(
		newRunCmd(f, streams),
		newCliquesCmd(f, streams),
		newClusteringCmd(f, streams),
		newGenerateCmd(f, streams),
	)

	return root
}

// Execute runs the tree with args and returns the first error.
func Execute(ctx context.Context, streams app.Streams, args []string) error {
	root := NewRootCmd(streams)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// newApp resolves the config (defaults, file, changed flags) and builds an App.
func newApp(cmd *cobra.Command, f *flags, streams app.Streams, override func(*config.Config)) (*app.App, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = strings.ToLower(f.format)
	}
	if changed("log-level") {
		cfg.Log.Level = strings.ToLower(f.logLevel)
	}
	if changed("log-format") {
		cfg.Log.Format = strings.ToLower(f.logFormat)
	}
	if changed("pivot") {
		cfg.Enumerate.Pivot = strings.ToLower(f.pivot)
	}
	if changed("seed") {
		cfg.Enumerate.Seed = f.seed
	}
	if changed("workers") {
		cfg.Enumerate.Workers = f.workers
	}
	if changed("mtx") {
		cfg.Input.MatrixMarket = f.mtx
	}
	if changed("local") {
		cfg.Output.Local = f.local
	}
	if changed("metrics-out") {
		cfg.Output.MetricsOut = f.metricsOut
	}
	if override != nil {
		override(cfg)
	}

	a, err := app.New(cfg, streams)
	if err != nil {
		return nil, fmt.Errorf("cliquer: %w", err)
	}

	return a, nil
}
