package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"

	"GameCatalog/pkg/logger"
)

const (
	defaultTimezone  = "UTC"
	configPathEnv    = "GAME_CATALOG_CONFIG"
	logLevelEnv      = "GAME_CATALOG_LOG_LEVEL"
	timezoneEnv      = "GAME_CATALOG_TIMEZONE"
	newBadgeDaysEnv  = "GAME_CATALOG_NEW_BADGE_DAYS"
	moreBadgeDaysEnv = "GAME_CATALOG_MORE_BADGE_DAYS"
)

var bootLog = logger.New("config")

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Badges  BadgeConfig   `yaml:"badges"`
	Page    PageConfig    `yaml:"page"`
	Sort    SortConfig    `yaml:"sort"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// BadgeConfig defines the badge windows and how zone-less dates are read.
type BadgeConfig struct {
	NewWindowDays  int            `yaml:"newWindowDays"`
	MoreWindowDays int            `yaml:"moreWindowDays"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the badge timezone string to a time.Location.
func (b BadgeConfig) Location() *time.Location {
	if b.location != nil {
		return b.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// PageConfig locates catalog parts in the markup.
type PageConfig struct {
	ContainerSelector string `yaml:"containerSelector"`
	ItemSelector      string `yaml:"itemSelector"`
	FilterBarSelector string `yaml:"filterBarSelector"`
	ToggleClass       string `yaml:"toggleClass"`
}

// SortConfig sets the initial list state.
type SortConfig struct {
	Default      string `yaml:"default"`
	Direction    string `yaml:"direction"`
	GroupByBadge bool   `yaml:"groupByBadge"`
}

// Load reads YAML configuration from path, or from GAME_CATALOG_CONFIG when
// path is empty, and applies environment overrides.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			bootLog.Printf("cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				bootLog.Printf("cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()
	cfg.validateSelectors()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(timezoneEnv); v != "" {
		c.Badges.Timezone = v
	}

	if v := os.Getenv(newBadgeDaysEnv); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			c.Badges.NewWindowDays = days
		} else {
			bootLog.Printf("ignoring %s=%q: want a positive day count", newBadgeDaysEnv, v)
		}
	}

	if v := os.Getenv(moreBadgeDaysEnv); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			c.Badges.MoreWindowDays = days
		} else {
			bootLog.Printf("ignoring %s=%q: want a positive day count", moreBadgeDaysEnv, v)
		}
	}
}

func (c *Config) bindTimezone() {
	tz := c.Badges.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		bootLog.Printf("unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Badges.location = loc
}

func (c *Config) validateSelectors() {
	defaults := defaultConfig().Page

	check := func(name string, value *string, fallback string) {
		if _, err := cascadia.Parse(*value); err != nil {
			bootLog.Printf("invalid %s %q: %v (reverting to %q)", name, *value, err, fallback)
			*value = fallback
		}
	}

	check("containerSelector", &c.Page.ContainerSelector, defaults.ContainerSelector)
	check("itemSelector", &c.Page.ItemSelector, defaults.ItemSelector)
	check("filterBarSelector", &c.Page.FilterBarSelector, defaults.FilterBarSelector)
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Badges.NewWindowDays > 0 {
		base.Badges.NewWindowDays = override.Badges.NewWindowDays
	}
	if override.Badges.MoreWindowDays > 0 {
		base.Badges.MoreWindowDays = override.Badges.MoreWindowDays
	}
	if override.Badges.Timezone != "" {
		base.Badges.Timezone = override.Badges.Timezone
	}

	if override.Page.ContainerSelector != "" {
		base.Page.ContainerSelector = override.Page.ContainerSelector
	}
	if override.Page.ItemSelector != "" {
		base.Page.ItemSelector = override.Page.ItemSelector
	}
	if override.Page.FilterBarSelector != "" {
		base.Page.FilterBarSelector = override.Page.FilterBarSelector
	}
	if override.Page.ToggleClass != "" {
		base.Page.ToggleClass = override.Page.ToggleClass
	}

	if override.Sort.Default != "" {
		base.Sort.Default = override.Sort.Default
	}
	if override.Sort.Direction != "" {
		base.Sort.Direction = override.Sort.Direction
	}
	base.Sort.GroupByBadge = base.Sort.GroupByBadge || override.Sort.GroupByBadge

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Badges: BadgeConfig{
			NewWindowDays:  30,
			MoreWindowDays: 30,
			Timezone:       defaultTimezone,
			location:       tz,
		},
		Page: PageConfig{
			ContainerSelector: ".game-grid",
			ItemSelector:      ".game",
			FilterBarSelector: "#filter-bar",
			ToggleClass:       "toggle",
		},
		Sort: SortConfig{
			Default:   "sortByDate",
			Direction: "descending",
		},
	}
}
