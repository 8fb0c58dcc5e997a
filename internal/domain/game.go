package domain

import "time"

// Game is one catalog entry as read from the page markup.
type Game struct {
	// Index is the node position inside the source container.
	Index            int
	Title            string
	Author           string
	ReleaseDate      *time.Time
	LastAddedDate    *time.Time
	AchievementCount *int

	Badge     Badge
	BadgeRank int
}

// LatestDate returns the most recent of release and last-added dates.
// Absent dates do not contribute; ok is false when neither is present.
func (g Game) LatestDate() (latest time.Time, ok bool) {
	if g.ReleaseDate != nil {
		latest, ok = *g.ReleaseDate, true
	}
	if g.LastAddedDate != nil && (!ok || g.LastAddedDate.After(latest)) {
		latest, ok = *g.LastAddedDate, true
	}
	return latest, ok
}

// Badge enumerates the mutually exclusive release/update markers.
type Badge string

const (
	BadgeSoon         Badge = "soon"
	BadgeSoonReleased Badge = "soon-released"
	BadgeNew          Badge = "new"
	BadgeMore         Badge = "more"
	BadgeNone         Badge = "none"
)

var badgeRanks = map[Badge]int{
	BadgeSoon:         5,
	BadgeSoonReleased: 4,
	BadgeNew:          1,
	BadgeMore:         2,
	BadgeNone:         3,
}

// Rank is the display-order group of the badge; lower groups come first.
func (b Badge) Rank() int {
	if r, ok := badgeRanks[b]; ok {
		return r
	}
	return badgeRanks[BadgeNone]
}

// Class returns the style class for the badge, empty for BadgeNone.
func (b Badge) Class() string {
	if b == BadgeNone || b == "" {
		return ""
	}
	return "badge-" + string(b)
}
