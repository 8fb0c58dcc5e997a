package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")

	cfg := Load("")

	if cfg.Badges.NewWindowDays != 30 || cfg.Badges.MoreWindowDays != 30 {
		t.Fatalf("unexpected windows: %+v", cfg.Badges)
	}
	if cfg.Page.ContainerSelector != ".game-grid" || cfg.Page.FilterBarSelector != "#filter-bar" {
		t.Fatalf("unexpected page selectors: %+v", cfg.Page)
	}
	if cfg.Sort.Default != "sortByDate" || cfg.Sort.Direction != "descending" || cfg.Sort.GroupByBadge {
		t.Fatalf("unexpected sort config: %+v", cfg.Sort)
	}
	if cfg.Badges.Location().String() != "UTC" {
		t.Fatalf("unexpected location: %s", cfg.Badges.Location())
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
badges:
  newWindowDays: 14
  timezone: Europe/Berlin
page:
  containerSelector: "#catalog"
sort:
  default: sortByTitle
  direction: ascending
  groupByBadge: true
`)

	cfg := Load(path)

	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %s", cfg.Logging.Level)
	}
	if cfg.Badges.NewWindowDays != 14 || cfg.Badges.MoreWindowDays != 30 {
		t.Fatalf("unexpected windows: %+v", cfg.Badges)
	}
	if cfg.Badges.Location().String() != "Europe/Berlin" {
		t.Fatalf("unexpected location: %s", cfg.Badges.Location())
	}
	if cfg.Page.ContainerSelector != "#catalog" || cfg.Page.ItemSelector != ".game" {
		t.Fatalf("unexpected page config: %+v", cfg.Page)
	}
	if cfg.Sort.Default != "sortByTitle" || cfg.Sort.Direction != "ascending" || !cfg.Sort.GroupByBadge {
		t.Fatalf("unexpected sort config: %+v", cfg.Sort)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "badges:\n  newWindowDays: 14\n")
	t.Setenv(configPathEnv, path)
	t.Setenv(newBadgeDaysEnv, "7")
	t.Setenv(moreBadgeDaysEnv, "not-a-number")
	t.Setenv(logLevelEnv, "warn")
	t.Setenv(timezoneEnv, "Nowhere/Land")

	cfg := Load("")

	if cfg.Badges.NewWindowDays != 7 {
		t.Fatalf("env should win over file: %d", cfg.Badges.NewWindowDays)
	}
	if cfg.Badges.MoreWindowDays != 30 {
		t.Fatalf("invalid env value should be ignored: %d", cfg.Badges.MoreWindowDays)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level: %s", cfg.Logging.Level)
	}
	if cfg.Badges.Location().String() != "UTC" {
		t.Fatalf("unknown timezone should revert to UTC, got %s", cfg.Badges.Location())
	}
}

func TestLoadInvalidSelectorReverts(t *testing.T) {
	t.Setenv(configPathEnv, "")
	path := writeConfig(t, "page:\n  itemSelector: \"div[\"\n")

	cfg := Load(path)

	if cfg.Page.ItemSelector != ".game" {
		t.Fatalf("invalid selector should revert, got %q", cfg.Page.ItemSelector)
	}
}

func TestLoadBrokenFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, "")
	path := writeConfig(t, "badges: [unclosed\n")

	cfg := Load(path)

	if cfg.Badges.NewWindowDays != 30 {
		t.Fatalf("broken file should keep defaults: %+v", cfg.Badges)
	}
}
