package listing

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"GameCatalog/internal/domain"
)

// Direction is multiplied into every comparison result.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Glyph is the toggle label for the direction.
func (d Direction) Glyph() string {
	if d > 0 {
		return "↑"
	}
	return "↓"
}

func (d Direction) String() string {
	if d > 0 {
		return "ascending"
	}
	return "descending"
}

// ParseDirection accepts ascending/asc/up and descending/desc/down.
// Anything else yields Descending.
func ParseDirection(value string) Direction {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ascending", "asc", "up":
		return Ascending
	default:
		return Descending
	}
}

// State is everything the controller needs to reproduce the current view.
type State struct {
	SortKey   string
	Direction Direction
	Query     string
	// Filtered is set once a search input has been handled. Until then the
	// page's own visibility is left as authored.
	Filtered bool
}

// Options configures a controller.
type Options struct {
	DefaultSort  string
	Direction    Direction
	GroupByBadge bool
}

// Controller owns order and visibility of a fixed set of games.
type Controller struct {
	state        State
	registry     *Registry
	entries      []Entry
	visible      map[int]bool
	groupByBadge bool
	caser        cases.Caser
	logger       *slog.Logger
}

// NewController takes ownership of games in their page order.
func NewController(games []domain.Game, registry *Registry, opts Options, log *slog.Logger) *Controller {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if opts.DefaultSort == "" {
		opts.DefaultSort = SortByDate
	}
	if _, err := registry.Resolve(opts.DefaultSort); err != nil {
		if log != nil {
			log.Warn("unknown default sort, using date", "sort", opts.DefaultSort)
		}
		opts.DefaultSort = SortByDate
	}
	if opts.Direction == 0 {
		opts.Direction = Descending
	}

	caser := cases.Lower(language.Und)
	entries := make([]Entry, 0, len(games))
	visible := make(map[int]bool, len(games))
	for _, g := range games {
		entries = append(entries, Entry{
			Game:         g,
			FoldedTitle:  caser.String(g.Title),
			FoldedAuthor: caser.String(g.Author),
		})
		visible[g.Index] = true
	}

	return &Controller{
		state:        State{SortKey: opts.DefaultSort, Direction: opts.Direction},
		registry:     registry,
		entries:      entries,
		visible:      visible,
		groupByBadge: opts.GroupByBadge,
		caser:        caser,
		logger:       log,
	}
}

// Controls describes the widgets mounted into the filter bar.
type Controls struct {
	SearchClass       string
	SearchPlaceholder string
	SearchValue       string
	Options           []Option
	Glyph             string
}

// Option is one entry of the sort selector.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Init returns the controls to mount and applies the default sort.
func (c *Controller) Init() Controls {
	c.Sort()
	return c.Controls()
}

// Controls reflects the current state onto control descriptors.
func (c *Controller) Controls() Controls {
	sorters := c.registry.Sorters()
	options := make([]Option, 0, len(sorters))
	for _, s := range sorters {
		options = append(options, Option{
			Value:    s.Name(),
			Label:    s.Label(),
			Selected: s.Name() == c.state.SortKey,
		})
	}
	return Controls{
		SearchClass:       "search",
		SearchPlaceholder: "Search…",
		SearchValue:       c.state.Query,
		Options:           options,
		Glyph:             c.state.Direction.Glyph(),
	}
}

// OnInput filters by a case-insensitive substring of title or author.
// Order is left untouched.
func (c *Controller) OnInput(value string) {
	query := c.caser.String(value)
	c.state.Query = query
	c.state.Filtered = true

	shown := 0
	for _, e := range c.entries {
		ok := query == "" ||
			strings.Contains(e.FoldedTitle, query) ||
			strings.Contains(e.FoldedAuthor, query)
		c.visible[e.Index] = ok
		if ok {
			shown++
		}
	}
	c.debug("filter applied", "query", query, "visible", shown, "total", len(c.entries))
}

// OnSelect switches the sort key and re-sorts. Unknown keys are ignored.
func (c *Controller) OnSelect(value string) {
	if _, err := c.registry.Resolve(value); err != nil {
		if c.logger != nil {
			c.logger.Warn("ignoring sort selection", "error", err)
		}
		return
	}
	c.state.SortKey = value
	c.Sort()
}

// OnToggle flips the direction and re-sorts.
func (c *Controller) OnToggle() {
	c.state.Direction *= -1
	c.Sort()
}

// Sort reorders every game, hidden ones included, by the active key.
func (c *Controller) Sort() {
	sorter, err := c.registry.Resolve(c.state.SortKey)
	if err != nil {
		return
	}

	dir := int(c.state.Direction)
	slices.SortFunc(c.entries, func(a, b Entry) int {
		if c.groupByBadge && a.BadgeRank != b.BadgeRank {
			return cmp.Compare(a.BadgeRank, b.BadgeRank)
		}
		if r := sorter.Compare(a, b); r != 0 {
			return r * dir
		}
		return tieBreak(a, b) * dir
	})
	c.debug("sorted", "key", c.state.SortKey, "direction", c.state.Direction.String())
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// View is a render snapshot of the controller.
type View struct {
	State   State
	Games   []domain.Game
	Visible map[int]bool
	Glyph   string
}

// View returns the current order and visibility for painting.
func (c *Controller) View() View {
	games := make([]domain.Game, 0, len(c.entries))
	for _, e := range c.entries {
		games = append(games, e.Game)
	}
	return View{
		State:   c.state,
		Games:   games,
		Visible: maps.Clone(c.visible),
		Glyph:   c.state.Direction.Glyph(),
	}
}

func (c *Controller) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
