// Package config loads and normalizes the site configuration (site.yaml)
// and exposes the static page gate used by navigation and the sitemap.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Pepryan/siteforge/internal/errors"
)

// SiteConfig describes the published site identity used by feeds and URLs.
type SiteConfig struct {
	URL         string `yaml:"url"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Author      string `yaml:"author,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Language    string `yaml:"language,omitempty"`
}

// ContentConfig locates the content collections on disk.
type ContentConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// OutputConfig controls where the build command writes the static site.
type OutputConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// FeedConfig tunes RSS generation.
type FeedConfig struct {
	Limit int `yaml:"limit,omitempty"` // max items; 0 means all
}

// Duration is a time.Duration that unmarshals from YAML strings ("10m")
// or bare numbers (seconds).
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Port         int      `yaml:"port,omitempty"`
	Watch        bool     `yaml:"watch,omitempty"`
	RebuildEvery Duration `yaml:"rebuild_every,omitempty"` // 0 disables scheduled rebuilds
}

// PageConfig is the per-page toggle block in site.yaml.
type PageConfig struct {
	Enabled bool `yaml:"enabled"`
	Nav     bool `yaml:"nav,omitempty"`
}

// Config is the root configuration value, threaded explicitly into the
// generators so they stay pure and testable (no ambient singletons).
type Config struct {
	Site    SiteConfig            `yaml:"site"`
	Content ContentConfig         `yaml:"content,omitempty"`
	Output  OutputConfig          `yaml:"output,omitempty"`
	Feed    FeedConfig            `yaml:"feed,omitempty"`
	Serve   ServeConfig           `yaml:"serve,omitempty"`
	Pages   map[string]PageConfig `yaml:"pages,omitempty"`
}

// Load reads, env-expands, validates, and normalizes a configuration file.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.ConfigInvalid(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize applies defaults and validates required fields.
func (c *Config) normalize() error {
	if c.Site.URL == "" {
		return errors.New(errors.CategoryConfig, errors.SeverityFatal, "site.url is required")
	}
	if !strings.HasPrefix(c.Site.URL, "http://") && !strings.HasPrefix(c.Site.URL, "https://") {
		return errors.ConfigInvalid("site.url", fmt.Errorf("must be an absolute http(s) URL, got %q", c.Site.URL))
	}
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")

	if c.Site.Title == "" {
		return errors.New(errors.CategoryConfig, errors.SeverityFatal, "site.title is required")
	}
	if c.Site.Language == "" {
		c.Site.Language = "en"
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "./content"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./public"
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = 8080
	}
	if c.Feed.Limit < 0 {
		c.Feed.Limit = 0
	}
	return nil
}

// AbsoluteURL joins a site-relative path onto the configured site URL.
func (c *Config) AbsoluteURL(path string) string {
	if path == "" || path == "/" {
		return c.Site.URL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.Site.URL + path
}
