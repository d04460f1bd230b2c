// Package config declares the screens of an application and their
// navigation-bar templates. Configuration is read with viper; the screen
// section is pure declarative data that compiles into a screen registry.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/navrail/navrail/internal/logging"
	"github.com/navrail/navrail/internal/navbar"
	"github.com/navrail/navrail/internal/routeid"
	"github.com/navrail/navrail/internal/screen"
)

// Config is the complete application configuration.
type Config struct {
	// DefaultLocale is the locale title keys resolve against when no
	// override is active.
	DefaultLocale string `mapstructure:"default_locale"`
	// Messages lists YAML message catalogs for title localization.
	Messages []string `mapstructure:"messages"`
	Logging  LoggingConfig           `mapstructure:"logging"`
	Screens  map[string]ScreenConfig `mapstructure:"screens"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	Level string `mapstructure:"level"`
}

// ScreenConfig declares one screen and its bar template.
type ScreenConfig struct {
	// Route is the unique route the screen registers under. Routes may be
	// hierarchical ("settings.profile").
	Route string `mapstructure:"route"`
	// Title is the static bar title.
	Title string `mapstructure:"title"`
	// TitleKey, when set, is resolved against the active locale and takes
	// precedence over Title.
	TitleKey string `mapstructure:"title_key"`
	// Overlay marks the screen as an overlay presentation on navigate.
	Overlay bool `mapstructure:"overlay"`
	// AutoReset controls whether the bar is re-sent on mount (default true).
	AutoReset *bool `mapstructure:"auto_reset"`
	// Buttons are the right-side bar buttons; ids are local and mandatory.
	Buttons []ButtonConfig `mapstructure:"buttons"`
	// LeftButton is the optional left slot; an id-less left button keeps
	// native back behavior.
	LeftButton *ButtonConfig `mapstructure:"left_button"`
}

// ButtonConfig declares one bar button.
type ButtonConfig struct {
	ID                 string `mapstructure:"id"`
	Title              string `mapstructure:"title"`
	Icon               string `mapstructure:"icon"`
	AccessibilityLabel string `mapstructure:"accessibility_label"`
}

// SetDefaults registers default values with viper. Call before reading
// the config file so defaults apply even without one.
func SetDefaults() {
	viper.SetDefault("default_locale", "en")
	viper.SetDefault("logging.level", "INFO")
}

// Load unmarshals and validates the configuration viper has read.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the screen declarations: every screen needs a unique,
// non-empty route and a bar template whose button ids are usable.
func (c *Config) Validate() error {
	if err := validateLevel(c.Logging.Level); err != nil {
		return err
	}

	seen := make(map[string]string, len(c.Screens)) // route -> screen name

	for _, name := range c.ScreenNames() {
		sc := c.Screens[name]

		if err := routeid.ValidateRoute(sc.Route); err != nil {
			return fmt.Errorf("screen %q: %w", name, err)
		}
		if owner, taken := seen[sc.Route]; taken {
			return fmt.Errorf("screen %q: route %q already used by screen %q", name, sc.Route, owner)
		}
		seen[sc.Route] = name

		if err := sc.Bar().Validate(); err != nil {
			return fmt.Errorf("screen %q: %w", name, err)
		}
	}
	return nil
}

// validateLevel accepts the known logging levels in any case. An empty
// level falls back to the default.
func validateLevel(level string) error {
	if level == "" {
		return nil
	}
	for _, known := range logging.ValidLevels() {
		if strings.EqualFold(level, known) {
			return nil
		}
	}
	return fmt.Errorf("logging.level %q is not one of %v", level, logging.ValidLevels())
}

// ScreenNames returns the declared screen names in sorted order.
func (c *Config) ScreenNames() []string {
	names := make([]string, 0, len(c.Screens))
	for name := range c.Screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bar compiles the declaration into a navigation-bar template.
func (sc ScreenConfig) Bar() navbar.NavigationBar {
	bar := navbar.NavigationBar{
		Title:   sc.Title,
		Overlay: sc.Overlay,
	}
	for _, b := range sc.Buttons {
		bar.Buttons = append(bar.Buttons, navbar.Button{
			ID:                 b.ID,
			Title:              b.Title,
			Icon:               b.Icon,
			AccessibilityLabel: b.AccessibilityLabel,
		})
	}
	if sc.LeftButton != nil {
		bar.LeftButton = &navbar.Button{
			ID:                 sc.LeftButton.ID,
			Title:              sc.LeftButton.Title,
			Icon:               sc.LeftButton.Icon,
			AccessibilityLabel: sc.LeftButton.AccessibilityLabel,
		}
	}
	return bar
}

// BuildRegistry compiles every declared screen into a descriptor and
// registers it. The update channel, title resolver and logger are shared
// across all descriptors; any of them may be nil.
func (c *Config) BuildRegistry(updates screen.UpdateChannel, titles screen.TitleResolver, logger screen.Logger) (*screen.Registry, error) {
	registry := screen.NewRegistry()

	for _, name := range c.ScreenNames() {
		sc := c.Screens[name]

		opts := []screen.Option{
			screen.WithUpdateChannel(updates),
		}
		if titles != nil && sc.TitleKey != "" {
			opts = append(opts,
				screen.WithTitleResolver(titles),
				screen.WithTitleKey(sc.TitleKey),
			)
		}
		if logger != nil {
			opts = append(opts, screen.WithLogger(logger))
		}
		if sc.AutoReset != nil {
			opts = append(opts, screen.WithAutoReset(*sc.AutoReset))
		}

		d := screen.New(name, sc.Bar(), opts...)
		d.SetRoute(sc.Route)

		if err := registry.Register(d); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
