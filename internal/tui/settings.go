package tui

import (
	"strings"

	"github.com/theirongolddev/ccb/internal/config"
	"github.com/theirongolddev/ccb/internal/tui/components"
	"github.com/theirongolddev/ccb/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// loadConfigOrDefault returns the saved config, or defaults if it can't be read.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func newSettingsForm(v *formValues) *huh.Form {
	cfg := loadConfigOrDefault()
	v.theme = cfg.Appearance.Theme
	v.logLevel = strings.ToLower(config.ParseLogLevel(cfg.General.LogLevel).String())

	themes := make([]string, 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(themes...)...).
				Value(&v.theme),
			huh.NewSelect[string]().
				Title("Log level").
				Description("Applies from the next run").
				Options(huh.NewOptions(logLevels...)...).
				Value(&v.logLevel),
		),
	)
}

// applySettings saves the settings form and switches the theme right away.
func (a App) applySettings(themeName, logLevel string) App {
	cfg := loadConfigOrDefault()
	cfg.Appearance.Theme = themeName
	cfg.General.LogLevel = logLevel

	if err := config.Save(cfg); err != nil {
		return a.WithStatus("Settings not saved: "+err.Error(), components.MsgError)
	}
	theme.SetActive(themeName)
	return a.WithStatus("Settings saved", components.MsgSuccess)
}
