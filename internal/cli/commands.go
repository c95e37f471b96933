package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquer/internal/app"
	"github.com/katalvlaran/cliquer/internal/config"
)

const sourceHelp = ` Use "-" to read standard input.`

func newRunCmd(f *flags, streams app.Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Enumerate maximal cliques with both variants and compute the clustering coefficient",
		Long:  "Runs plain and pivoted Bron–Kerbosch and the average clustering coefficient on one graph." + sourceHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, streams, nil)
			if err != nil {
				return err
			}

			return a.Run(cmd.Context(), app.Job{Source: args[0], Cliques: true, Clustering: true})
		},
	}
}

func newCliquesCmd(f *flags, streams app.Streams) *cobra.Command {
	var variants []string
	cmd := &cobra.Command{
		Use:   "cliques <file>",
		Short: "Enumerate maximal cliques",
		Long:  "Lists every maximal clique of the graph." + sourceHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, streams, func(c *config.Config) {
				if cmd.Flags().Changed("variant") {
					c.Enumerate.Variants = lower(variants)
				}
			})
			if err != nil {
				return err
			}

			return a.Run(cmd.Context(), app.Job{Source: args[0], Cliques: true})
		},
	}
	cmd.Flags().StringSliceVar(&variants, "variant", nil, `variants to run: plain, pivot, or "plain,pivot" for both`)

	return cmd
}

func newClusteringCmd(f *flags, streams app.Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "clustering <file>",
		Short: "Compute clustering coefficients and the triangle count",
		Long:  "Computes the average local clustering coefficient, dividing by the number of vertices." + sourceHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, streams, nil)
			if err != nil {
				return err
			}

			return a.Run(cmd.Context(), app.Job{Source: args[0], Clustering: true})
		},
	}
}

func newGenerateCmd(f *flags, streams app.Streams) *cobra.Command {
	job := app.GenerateJob{Kind: "random", N: 30, P: 0.2, Seed: 1}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph as an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, f, streams, nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				job.Seed = f.seed
			}

			return a.Generate(cmd.Context(), job)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&job.Kind, "kind", job.Kind, "graph kind: "+strings.Join(app.Kinds, ", "))
	fs.IntVar(&job.N, "n", job.N, "number of vertices (first side for bipartite)")
	fs.IntVar(&job.M, "m", 0, "second side for bipartite")
	fs.Float64Var(&job.P, "p", job.P, "edge probability for random")

	return cmd
}

func lower(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}

	return out
}
