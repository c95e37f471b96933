package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/loader"
)

// ErrUnknownKind is returned by Generate for an unsupported graph kind.
var ErrUnknownKind = errors.New("app: unknown graph kind")

// GenerateJob describes a synthetic graph.
type GenerateJob struct {
	Kind string
	N    int
	M    int
	P    float64
	Seed int64
}

// Kinds lists the graph kinds Generate understands.
var Kinds = []string{"random", "complete", "path", "cycle", "star", "wheel", "bipartite", "isolated"}

// Generate builds the requested graph and writes it to Out as an edge list.
func (a *App) Generate(ctx context.Context, job GenerateJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cons, err := constructorFor(job)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(job.Seed)}, cons)
	if err != nil {
		return fmt.Errorf("app: generate %s: %w", job.Kind, err)
	}
	a.logger.Info("graph generated",
		"kind", job.Kind,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"seed", job.Seed)

	return loader.Write(a.streams.Out, g)
}

func constructorFor(job GenerateJob) (builder.Constructor, error) {
	switch strings.ToLower(job.Kind) {
	case "random":
		return builder.RandomSparse(job.N, job.P), nil
	case "complete":
		return builder.Complete(job.N), nil
	case "path":
		return builder.Path(job.N), nil
	case "cycle":
		return builder.Cycle(job.N), nil
	case "star":
		return builder.Star(job.N), nil
	case "wheel":
		return builder.Wheel(job.N), nil
	case "bipartite":
		return builder.CompleteBipartite(job.N, job.M), nil
	case "isolated":
		return builder.Isolated(job.N), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, job.Kind, strings.Join(Kinds, ", "))
	}
}
