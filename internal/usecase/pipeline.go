package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"GameCatalog/internal/badges"
	"GameCatalog/internal/listing"
	"GameCatalog/internal/ports"
)

// PipelineDeps wires the page adapter and the catalog logic.
type PipelineDeps struct {
	Loader     ports.PageLoader
	Classifier *badges.Classifier
	Registry   *listing.Registry
	Options    listing.Options
	Logger     *slog.Logger
}

// Pipeline implements the page-load workflow: classify once, mount the
// controls, sort, replay interactions and paint the result.
type Pipeline struct {
	loader     ports.PageLoader
	classifier *badges.Classifier
	registry   *listing.Registry
	options    listing.Options
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	classifier := deps.Classifier
	if classifier == nil {
		classifier = badges.NewClassifier(badges.DefaultNewWindowDays, badges.DefaultMoreWindowDays, deps.Logger)
	}
	registry := deps.Registry
	if registry == nil {
		registry = listing.DefaultRegistry()
	}
	return &Pipeline{
		loader:     deps.Loader,
		classifier: classifier,
		registry:   registry,
		options:    deps.Options,
		logger:     deps.Logger,
	}
}

// ProcessPage reads the catalog page from in and writes the painted page to out.
func (p *Pipeline) ProcessPage(ctx context.Context, now time.Time, in io.Reader, out io.Writer, events []listing.Event) error {
	if p.loader == nil {
		return fmt.Errorf("page loader is not configured")
	}

	page, err := p.loader.Load(ctx, in)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}

	games := page.Games()
	p.classifier.Annotate(now, games)
	page.ApplyBadges(games)

	controller := listing.NewController(games, p.registry, p.options, p.logger)
	if err := page.MountControls(controller.Init()); err != nil {
		return fmt.Errorf("mount controls: %w", err)
	}

	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := controller.Dispatch(ev); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	view := controller.View()
	page.Render(view)
	p.info("catalog processed", "games", len(games), "events", len(events), "sort", view.State.SortKey, "direction", view.State.Direction.String())

	if _, err := page.WriteTo(out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
