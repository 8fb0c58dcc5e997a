package page

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"GameCatalog/internal/domain"
)

const (
	attrTitle            = "data-title"
	attrAuthor           = "data-author"
	attrReleaseDate      = "data-release-date"
	attrLastAddedDate    = "data-last-added-date"
	attrAchievementCount = "data-achievement-count"
	attrBadgeRank        = "data-badge-rank"
)

func parseGame(index int, node *goquery.Selection, loc *time.Location) domain.Game {
	title, _ := node.Attr(attrTitle)
	author, _ := node.Attr(attrAuthor)

	return domain.Game{
		Index:            index,
		Title:            title,
		Author:           author,
		ReleaseDate:      parseDate(node, attrReleaseDate, loc),
		LastAddedDate:    parseDate(node, attrLastAddedDate, loc),
		AchievementCount: parseCount(node, attrAchievementCount),
	}
}

// parseDate is best effort: missing or unreadable values are absent.
func parseDate(node *goquery.Selection, attr string, loc *time.Location) *time.Time {
	raw, ok := node.Attr(attr)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return nil
	}
	return &parsed
}

// parseCount reads any finite decimal number, "12.0" and "1e2" included,
// and truncates it toward zero.
func parseCount(node *goquery.Selection, attr string) *int {
	raw, ok := node.Attr(attr)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	n := int(f)
	return &n
}

// setDisplay replaces the display declaration of the inline style.
func setDisplay(node *goquery.Selection, value string) {
	style, _ := node.Attr("style")

	decls := make([]string, 0, 2)
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(name), "display") {
			continue
		}
		decls = append(decls, decl)
	}
	decls = append(decls, "display: "+value)

	node.SetAttr("style", strings.Join(decls, "; "))
}
