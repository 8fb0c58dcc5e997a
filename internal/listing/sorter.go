package listing

import (
	"cmp"
	"fmt"
	"strings"

	"GameCatalog/internal/domain"
)

// Sorter names match the option values rendered into the sort selector.
const (
	SortByDate   = "sortByDate"
	SortByTitle  = "sortByTitle"
	SortByAuthor = "sortByAuthor"
	SortByCount  = "sortByCount"
)

// Entry is a game together with its lowercased text keys, folded once when
// the controller takes ownership of the games.
type Entry struct {
	domain.Game
	FoldedTitle  string
	FoldedAuthor string
}

// Sorter captures one ordering strategy over catalog games.
type Sorter interface {
	Name() string
	Label() string
	// Compare orders a before b ascending; it returns 0 only for equal keys.
	Compare(a, b Entry) int
}

// Registry keeps sorters by name in selector order.
type Registry struct {
	sorters map[string]Sorter
	order   []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sorters: map[string]Sorter{}}
}

// DefaultRegistry returns the four catalog sorters, date first.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(byDate{})
	r.Register(byTitle{})
	r.Register(byAuthor{})
	r.Register(byCount{})
	return r
}

// Register adds or replaces a sorter implementation.
func (r *Registry) Register(sorter Sorter) {
	if r.sorters == nil {
		r.sorters = map[string]Sorter{}
	}
	if _, exists := r.sorters[sorter.Name()]; !exists {
		r.order = append(r.order, sorter.Name())
	}
	r.sorters[sorter.Name()] = sorter
}

// Resolve returns a sorter by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Sorter, error) {
	if sorter, ok := r.sorters[name]; ok {
		return sorter, nil
	}
	return nil, fmt.Errorf("sorter %s is not registered", name)
}

// Sorters lists registered sorters in registration order.
func (r *Registry) Sorters() []Sorter {
	out := make([]Sorter, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.sorters[name])
	}
	return out
}

type byTitle struct{}

func (byTitle) Name() string  { return SortByTitle }
func (byTitle) Label() string { return "Title" }
func (byTitle) Compare(a, b Entry) int {
	return strings.Compare(a.FoldedTitle, b.FoldedTitle)
}

type byAuthor struct{}

func (byAuthor) Name() string  { return SortByAuthor }
func (byAuthor) Label() string { return "Author" }
func (byAuthor) Compare(a, b Entry) int {
	return strings.Compare(a.FoldedAuthor, b.FoldedAuthor)
}

// byCount sorts a missing achievement count below every present count.
type byCount struct{}

func (byCount) Name() string  { return SortByCount }
func (byCount) Label() string { return "Achievements" }
func (byCount) Compare(a, b Entry) int {
	switch {
	case a.AchievementCount == nil && b.AchievementCount == nil:
		return 0
	case a.AchievementCount == nil:
		return -1
	case b.AchievementCount == nil:
		return 1
	}
	return cmp.Compare(*a.AchievementCount, *b.AchievementCount)
}

// byDate sorts by the most recent of release and last-added dates;
// a game with neither date sorts lowest.
type byDate struct{}

func (byDate) Name() string  { return SortByDate }
func (byDate) Label() string { return "Date" }
func (byDate) Compare(a, b Entry) int {
	at, aok := a.LatestDate()
	bt, bok := b.LatestDate()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return at.Compare(bt)
}

// tieBreak keeps the order total: lowercased title, then source position.
func tieBreak(a, b Entry) int {
	if c := strings.Compare(a.FoldedTitle, b.FoldedTitle); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
