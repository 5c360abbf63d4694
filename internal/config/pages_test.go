package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPageEnabled_DefaultsAndForcedPages(t *testing.T) {
	cfg := &Config{}

	// Content-derived routes are always enabled, even with no pages block.
	for _, name := range []string{"home", "blog", "archive", "blog-tags", "series"} {
		require.True(t, cfg.IsPageEnabled(name), name)
	}

	// Optional pages default to disabled.
	require.False(t, cfg.IsPageEnabled("about"))
	require.False(t, cfg.IsPageEnabled("projects"))

	// Unknown page keys default to false.
	require.False(t, cfg.IsPageEnabled("guestbook"))
}

func TestIsPageEnabled_ConfigToggles(t *testing.T) {
	cfg := &Config{Pages: map[string]PageConfig{
		"about":    {Enabled: true, Nav: true},
		"projects": {Enabled: false},
		// Attempting to disable a forced page has no effect.
		"blog": {Enabled: false},
	}}

	require.True(t, cfg.IsPageEnabled("about"))
	require.False(t, cfg.IsPageEnabled("projects"))
	require.True(t, cfg.IsPageEnabled("blog"))
}

func TestShowInNavigation(t *testing.T) {
	cfg := &Config{Pages: map[string]PageConfig{
		"about":    {Enabled: true, Nav: true},
		"contact":  {Enabled: true, Nav: false},
		"projects": {Enabled: false, Nav: true},
	}}

	require.True(t, cfg.ShowInNavigation("about"))
	require.False(t, cfg.ShowInNavigation("contact"), "enabled but nav off")
	require.False(t, cfg.ShowInNavigation("projects"), "disabled pages never show")
	require.False(t, cfg.ShowInNavigation("blog"), "absent page key defaults to nav off")
}

func TestEnabledStaticPages_FiltersAndKeepsTableOrder(t *testing.T) {
	cfg := &Config{Pages: map[string]PageConfig{
		"about": {Enabled: true, Nav: true},
	}}

	pages := cfg.EnabledStaticPages()

	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"home", "about", "blog", "archive", "blog-tags", "series"}, names)

	home := pages[0]
	require.Equal(t, "/", home.Path)
	require.Equal(t, 1.0, home.Priority)
	require.Equal(t, "weekly", home.Changefreq)
	require.True(t, home.Enabled)
}
