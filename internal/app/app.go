package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"GameCatalog/internal/badges"
	"GameCatalog/internal/config"
	"GameCatalog/internal/infrastructure/page"
	"GameCatalog/internal/listing"
	"GameCatalog/internal/logging"
	"GameCatalog/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// RunOptions carries the per-invocation inputs.
type RunOptions struct {
	Input  io.Reader
	Output io.Writer
	// Now is the evaluation time for badges; zero means time.Now.
	Now    time.Time
	Events []listing.Event
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	loader := page.NewLoader(page.Selectors{
		Container:   cfg.Page.ContainerSelector,
		Item:        cfg.Page.ItemSelector,
		FilterBar:   cfg.Page.FilterBarSelector,
		ToggleClass: cfg.Page.ToggleClass,
	}, cfg.Badges.Location(), baseLogger.With("component", "page"))

	classifier := badges.NewClassifier(
		cfg.Badges.NewWindowDays,
		cfg.Badges.MoreWindowDays,
		baseLogger.With("component", "badges"),
	)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Loader:     loader,
		Classifier: classifier,
		Registry:   listing.DefaultRegistry(),
		Options: listing.Options{
			DefaultSort:  cfg.Sort.Default,
			Direction:    listing.ParseDirection(cfg.Sort.Direction),
			GroupByBadge: cfg.Sort.GroupByBadge,
		},
		Logger: baseLogger.With("component", "listing"),
	})
	return &Application{cfg: cfg, pipeline: pipeline}
}

// Run processes one catalog page.
func (a *Application) Run(ctx context.Context, opts RunOptions) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return a.pipeline.ProcessPage(ctx, now.In(a.cfg.Badges.Location()), opts.Input, opts.Output, opts.Events)
}
