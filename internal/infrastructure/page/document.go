package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"GameCatalog/internal/domain"
	"GameCatalog/internal/listing"
	"GameCatalog/internal/ports"
)

var (
	ErrContainerNotFound = errors.New("catalog container not found")
	ErrFilterBarNotFound = errors.New("filter bar not found")
)

// Selectors locate the catalog parts inside the page.
type Selectors struct {
	Container   string
	Item        string
	FilterBar   string
	ToggleClass string
}

// Loader parses catalog pages with goquery.
type Loader struct {
	selectors Selectors
	location  *time.Location
	logger    *slog.Logger
}

var _ ports.PageLoader = (*Loader)(nil)

// NewLoader wires selectors and the location used for zone-less dates.
func NewLoader(selectors Selectors, loc *time.Location, log *slog.Logger) *Loader {
	if loc == nil {
		loc = time.UTC
	}
	return &Loader{selectors: selectors, location: loc, logger: log}
}

// Load parses the page and locates the item container.
func (l *Loader) Load(ctx context.Context, r io.Reader) (ports.CatalogPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	container := doc.Find(l.selectors.Container).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, l.selectors.Container)
	}

	d := &Document{
		doc:       doc,
		selectors: l.selectors,
		container: container,
		nodes:     map[int]*goquery.Selection{},
		location:  l.location,
		logger:    l.logger,
	}
	container.ChildrenFiltered(l.selectors.Item).Each(func(i int, s *goquery.Selection) {
		d.nodes[i] = s
		d.order = append(d.order, i)
	})
	d.debug("page loaded", "items", len(d.order))

	return d, nil
}

// Document is a parsed catalog page.
type Document struct {
	doc       *goquery.Document
	selectors Selectors
	container *goquery.Selection
	nodes     map[int]*goquery.Selection
	order     []int
	controls  *mounted
	location  *time.Location
	logger    *slog.Logger
}

var _ ports.CatalogPage = (*Document)(nil)

// Games reads the data attributes of every item node.
func (d *Document) Games() []domain.Game {
	games := make([]domain.Game, 0, len(d.order))
	for _, idx := range d.order {
		games = append(games, parseGame(idx, d.nodes[idx], d.location))
	}
	return games
}

// ApplyBadges adds "badge" and "badge-<kind>" classes and the rank attribute.
func (d *Document) ApplyBadges(games []domain.Game) {
	for _, g := range games {
		node, ok := d.nodes[g.Index]
		if !ok {
			continue
		}
		if class := g.Badge.Class(); class != "" {
			node.AddClass("badge", class)
			// AddClass can leave doubled separators behind.
			node.SetAttr("class", strings.Join(strings.Fields(node.AttrOr("class", "")), " "))
		}
		node.SetAttr(attrBadgeRank, strconv.Itoa(g.BadgeRank))
	}
}

// MountControls appends the search input and sort wrapper to the filter bar,
// replacing controls left by a previous run.
func (d *Document) MountControls(controls listing.Controls) error {
	bar := d.doc.Find(d.selectors.FilterBar).First()
	if bar.Length() == 0 {
		return fmt.Errorf("%w: %s", ErrFilterBarNotFound, d.selectors.FilterBar)
	}

	bar.ChildrenFiltered("input." + controls.SearchClass).Remove()
	bar.ChildrenFiltered("div." + sortSelectClass).Remove()

	search, wrapper, m := buildControls(controls, d.selectors.ToggleClass)
	bar.AppendNodes(search, wrapper)
	d.controls = m
	return nil
}

// Render appends item nodes in view order. Display styles are written only
// once a filter has run, so items hidden by the page itself stay hidden.
func (d *Document) Render(view listing.View) {
	for _, g := range view.Games {
		node, ok := d.nodes[g.Index]
		if !ok {
			continue
		}
		d.container.AppendSelection(node)
		if !view.State.Filtered {
			continue
		}
		if view.Visible[g.Index] {
			setDisplay(node, "block")
		} else {
			setDisplay(node, "none")
		}
	}

	d.controls.update(view.State.Query, view.Glyph, view.State.SortKey)
	d.debug("page rendered", "sort", view.State.SortKey, "direction", view.State.Direction.String())
}

// WriteTo serialises the whole document.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := html.Render(cw, d.doc.Nodes[0]); err != nil {
		return cw.n, fmt.Errorf("render document: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (d *Document) debug(msg string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}
