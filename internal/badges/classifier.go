package badges

import (
	"log/slog"
	"time"

	"GameCatalog/internal/domain"
)

const (
	// DefaultNewWindowDays keeps the "new" badge for this many days after release.
	DefaultNewWindowDays = 30
	// DefaultMoreWindowDays keeps the "more" badge for this many days after achievements were added.
	DefaultMoreWindowDays = 30
)

// Classifier assigns a single badge to each game from its dates.
type Classifier struct {
	NewWindowDays  int
	MoreWindowDays int
	logger         *slog.Logger
}

// NewClassifier builds a classifier; non-positive windows fall back to defaults.
func NewClassifier(newWindowDays, moreWindowDays int, log *slog.Logger) *Classifier {
	if newWindowDays <= 0 {
		newWindowDays = DefaultNewWindowDays
	}
	if moreWindowDays <= 0 {
		moreWindowDays = DefaultMoreWindowDays
	}
	return &Classifier{
		NewWindowDays:  newWindowDays,
		MoreWindowDays: moreWindowDays,
		logger:         log,
	}
}

// Classify picks the first matching badge in the order
// soon, soon-released, new, more, none.
func (c *Classifier) Classify(now time.Time, releaseDate, lastAddedDate *time.Time) domain.Badge {
	switch {
	case releaseDate != nil && now.Before(*releaseDate):
		return domain.BadgeSoon
	case lastAddedDate != nil && now.Before(*lastAddedDate):
		return domain.BadgeSoonReleased
	case releaseDate != nil && now.Before(AddDays(*releaseDate, c.NewWindowDays)):
		return domain.BadgeNew
	case lastAddedDate != nil && now.Before(AddDays(*lastAddedDate, c.MoreWindowDays)):
		return domain.BadgeMore
	default:
		return domain.BadgeNone
	}
}

// Annotate stamps badge and rank on every game in place.
func (c *Classifier) Annotate(now time.Time, games []domain.Game) {
	for i := range games {
		g := &games[i]
		g.Badge = c.Classify(now, g.ReleaseDate, g.LastAddedDate)
		g.BadgeRank = g.Badge.Rank()
		c.debug("classified game", "title", g.Title, "badge", g.Badge, "rank", g.BadgeRank)
	}
}

// AddDays returns t moved by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func (c *Classifier) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
