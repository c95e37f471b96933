package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/clustering"
	"github.com/katalvlaran/cliquer/core"
	"github.com/katalvlaran/cliquer/internal/config"
	"github.com/katalvlaran/cliquer/loader"
	"github.com/katalvlaran/cliquer/metrics"
	"github.com/katalvlaran/cliquer/report"
)

// StdinSource names standard input as the graph source.
const StdinSource = "-"

// Streams are the process I/O handles. Logs go to Err, reports to Out.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Job selects what one run computes.
type Job struct {
	Source     string
	Cliques    bool
	Clustering bool
}

// App holds one validated configuration and its collaborators.
type App struct {
	cfg     *config.Config
	streams Streams
	logger  *slog.Logger
	metrics *metrics.Recorder
	newID   func() string
}

// New validates cfg and builds an App.
func New(cfg *config.Config, streams Streams) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if streams.Err == nil {
		streams.Err = io.Discard
	}

	return &App{
		cfg:     cfg,
		streams: streams,
		logger:  newLogger(cfg.Log.Level, cfg.Log.Format, streams.Err),
		metrics: metrics.NewRecorder(),
		newID:   uuid.NewString,
	}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Metrics returns the recorder every run reports into.
func (a *App) Metrics() *metrics.Recorder { return a.metrics }

// Run loads job.Source in full, computes what job asks for and renders one
// report. Nothing is written to Out unless every step succeeded.
func (a *App) Run(ctx context.Context, job Job) error {
	runID := a.newID()
	logger := a.logger.With("run_id", runID)
	ctx = WithLogger(ctx, logger)

	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	start := time.Now()
	g, err := a.load(ctx, job.Source)
	if err != nil {
		logger.Error("load failed", "source", job.Source, "error", err)
		return err
	}
	st := g.Stats()
	logger.Info("graph loaded",
		"source", job.Source,
		"vertices", st.VertexCount,
		"edges", st.EdgeCount,
		"elapsed", time.Since(start))

	rep := &report.Report{RunID: runID, Source: job.Source, Graph: report.NewGraphSection(g)}

	if job.Cliques {
		if rep.Enumerations, err = a.enumerate(ctx, g); err != nil {
			logger.Error("enumeration failed", "error", err)
			return err
		}
	}
	if job.Clustering {
		rep.Clustering = a.cluster(ctx, g)
	}

	// Metrics go first: the report is the last thing a run writes.
	if err := a.writeMetrics(); err != nil {
		logger.Error("metrics output failed", "path", a.cfg.Output.MetricsOut, "error", err)
		return err
	}
	if err := report.Render(a.streams.Out, rep, format); err != nil {
		return err
	}
	logger.Debug("run finished", "elapsed", time.Since(start))

	return nil
}

func (a *App) load(ctx context.Context, source string) (*core.Graph, error) {
	var opts []loader.Option
	if a.cfg.Input.MatrixMarket {
		opts = append(opts, loader.WithMatrixMarket())
	}
	if a.cfg.Input.MaxLineBytes > 0 {
		opts = append(opts, loader.WithMaxLineBytes(a.cfg.Input.MaxLineBytes))
	}

	if source == StdinSource {
		if a.streams.In == nil {
			return nil, errors.New("app: stdin is not available")
		}
		LoggerFrom(ctx).Debug("reading graph from stdin")

		return loader.Load(a.streams.In, opts...)
	}

	return loader.LoadFile(source, opts...)
}

func (a *App) enumerate(ctx context.Context, g *core.Graph) ([]*report.Enumeration, error) {
	logger := LoggerFrom(ctx)
	pivot, err := clique.ParsePivot(a.cfg.Enumerate.Pivot)
	if err != nil {
		return nil, err
	}

	var out []*report.Enumeration
	for _, name := range a.cfg.Enumerate.Variants {
		variant, err := clique.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		e, err := clique.New(g, variant,
			clique.WithContext(ctx),
			clique.WithPivot(pivot),
			clique.WithSeed(a.cfg.Enumerate.Seed),
			clique.WithWorkers(a.cfg.Enumerate.Workers),
			clique.WithObserver(a.metrics),
		)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		res, err := e.Run()
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)
		a.metrics.ObserveRun(res, elapsed)
		logger.Info("cliques enumerated",
			"variant", variant,
			"cliques", res.Count(),
			"calls", res.Calls,
			"max_depth", res.MaxDepth,
			"elapsed", elapsed)

		out = append(out, report.NewEnumeration(res, a.cfg.Enumerate.Pivot))
	}

	return out, nil
}

func (a *App) cluster(ctx context.Context, g *core.Graph) *report.ClusteringInfo {
	info := &report.ClusteringInfo{
		Average:   clustering.Average(g),
		Triangles: clustering.Triangles(g),
	}
	if a.cfg.Output.Local {
		info.Local = clustering.All(g)
	}
	a.metrics.SetClustering(info.Average, info.Triangles)
	LoggerFrom(ctx).Info("clustering computed", "average", info.Average, "triangles", info.Triangles)

	return info
}

// writeMetrics dumps the recorder to cfg.Output.MetricsOut, "-" meaning Err.
func (a *App) writeMetrics() error {
	switch path := a.cfg.Output.MetricsOut; path {
	case "":
		return nil
	case StdinSource:
		return a.metrics.WriteText(a.streams.Err)
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("app: metrics: %w", err)
		}
		if err := a.metrics.WriteText(f); err != nil {
			f.Close()
			return err
		}

		return f.Close()
	}
}
