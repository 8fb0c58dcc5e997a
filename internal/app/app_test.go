package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"GameCatalog/internal/config"
	"GameCatalog/internal/listing"
	"GameCatalog/internal/logging"
)

const catalogPage = `<!DOCTYPE html>
<html><head><title>Catalog</title></head><body>
<nav id="filter-bar"><h2>Games</h2></nav>
<section class="game-grid">
  <article class="game" data-title="Zelda" data-author="Nintendo" data-release-date="2025-11-20" data-achievement-count="40"></article>
  <article class="game" data-title="Adventure" data-author="Atari" data-release-date="2019-04-18" data-last-added-date="2025-10-25" data-achievement-count="8"></article>
  <article class="game" data-title="Mario" data-author="Nintendo" data-release-date="2025-11-01"></article>
  <article class="game" data-title="Pong" data-author="Atari" data-release-date="2018-01-01" data-last-added-date="2025-12-01" data-achievement-count="3"></article>
  <article class="game" data-title="Tetris" data-author="Pajitnov" data-release-date="2017-06-06"></article>
</section>
</body></html>`

func testConfig() config.Config {
	var cfg config.Config
	cfg.Logging.Level = "error"
	cfg.Badges.NewWindowDays = 30
	cfg.Badges.MoreWindowDays = 30
	cfg.Page = config.PageConfig{
		ContainerSelector: ".game-grid",
		ItemSelector:      ".game",
		FilterBarSelector: "#filter-bar",
		ToggleClass:       "toggle",
	}
	cfg.Sort = config.SortConfig{Default: listing.SortByDate, Direction: "descending"}
	return cfg
}

func run(t *testing.T, cfg config.Config, events ...listing.Event) *goquery.Document {
	t.Helper()

	var out bytes.Buffer
	application := New(cfg, logging.NewWithWriter(io.Discard, "error"))
	err := application.Run(context.Background(), RunOptions{
		Input:  strings.NewReader(catalogPage),
		Output: &out,
		Now:    time.Date(2025, time.November, 8, 12, 0, 0, 0, time.UTC),
		Events: events,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&out)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	return doc
}

func summary(doc *goquery.Document) []string {
	var out []string
	doc.Find(".game-grid > .game").Each(func(_ int, s *goquery.Selection) {
		class := strings.Join(strings.Fields(s.AttrOr("class", "")), " ")
		entry := s.AttrOr("data-title", "") + ":" + class
		if strings.Contains(s.AttrOr("style", ""), "display: none") {
			entry += ":hidden"
		}
		out = append(out, entry)
	})
	return out
}

func TestRunDefaultPage(t *testing.T) {
	t.Parallel()

	doc := run(t, testConfig())

	want := []string{
		"Pong:game badge badge-soon-released",
		"Zelda:game badge badge-soon",
		"Mario:game badge badge-new",
		"Adventure:game badge badge-more",
		"Tetris:game",
	}
	if diff := cmp.Diff(want, summary(doc)); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}

	bar := doc.Find("#filter-bar")
	if bar.Find("h2").Length() != 1 {
		t.Fatalf("existing filter bar content must be kept")
	}
	if bar.Find("input.search").Length() != 1 || bar.Find("div.sortSelect a.toggle").Text() != "↓" {
		t.Fatalf("controls not mounted")
	}
}

func TestRunReplaysEvents(t *testing.T) {
	t.Parallel()

	doc := run(t, testConfig(),
		listing.Event{Kind: listing.EventSelect, Value: listing.SortByCount},
		listing.Event{Kind: listing.EventToggle},
		listing.Event{Kind: listing.EventInput, Value: "atari"},
	)

	want := []string{
		"Mario:game badge badge-new:hidden",
		"Tetris:game:hidden",
		"Pong:game badge badge-soon-released",
		"Adventure:game badge badge-more",
		"Zelda:game badge badge-soon:hidden",
	}
	if diff := cmp.Diff(want, summary(doc)); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}

	if got := doc.Find("div.sortSelect a.toggle").Text(); got != "↑" {
		t.Fatalf("unexpected glyph %q", got)
	}
	if got := doc.Find("option[selected]").AttrOr("value", ""); got != listing.SortByCount {
		t.Fatalf("unexpected selected option %q", got)
	}
}

func TestRunGroupByBadge(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Sort.GroupByBadge = true
	doc := run(t, cfg)

	want := []string{
		"Mario:game badge badge-new",
		"Adventure:game badge badge-more",
		"Tetris:game",
		"Pong:game badge badge-soon-released",
		"Zelda:game badge badge-soon",
	}
	if diff := cmp.Diff(want, summary(doc)); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
}
