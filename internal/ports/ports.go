package ports

import (
	"context"
	"io"

	"GameCatalog/internal/domain"
	"GameCatalog/internal/listing"
)

// PageLoader parses catalog markup into a page the use case can paint on.
type PageLoader interface {
	Load(ctx context.Context, r io.Reader) (CatalogPage, error)
}

// CatalogPage is the display surface holding the game nodes.
type CatalogPage interface {
	// Games reads every item node in container order.
	Games() []domain.Game
	// ApplyBadges writes badge markers; games are matched by Index.
	ApplyBadges(games []domain.Game)
	// MountControls injects search, selector and toggle into the filter bar.
	MountControls(controls listing.Controls) error
	// Render reflects order, visibility and control state onto the page.
	Render(view listing.View)
	io.WriterTo
}
