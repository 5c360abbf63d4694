package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/content"
)

func TestRunInit_WritesLoadableStarterSite(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, runInit(false))

	cfg, err := config.Load("site.yaml")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", cfg.Site.URL)

	store, err := content.Load(cfg.Content.Dir)
	require.NoError(t, err)
	require.Len(t, store.Posts, 1)
	require.Equal(t, "hello-world", store.Posts[0].Slug)
	require.Empty(t, store.Series)
}

func TestRunInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, runInit(false))
	require.Error(t, runInit(false))
	require.NoError(t, runInit(true))
}
