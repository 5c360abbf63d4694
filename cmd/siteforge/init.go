package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const starterConfig = `site:
  url: https://example.com
  title: My Notes
  description: Personal notes and multi-part series
  author: Your Name

content:
  dir: ./content

output:
  dir: ./public

pages:
  about:
    enabled: true
    nav: true
  projects:
    enabled: false
  contact:
    enabled: false

feed:
  limit: 20

serve:
  port: 8080
`

const starterPost = `---
title: Hello World
date: 2024-01-01
tags: [meta]
summary: The first post on this site.
---

# Hello World

Welcome. Edit or remove this post in content/posts/.
`

const starterSeries = `# Series catalog. Posts reference a series by slug in their frontmatter.
[]
`

// runInit writes a starter site.yaml plus example content. Existing files
// are preserved unless force is set.
func runInit(force bool) error {
	files := map[string]string{
		"site.yaml":                    starterConfig,
		"content/posts/hello-world.md": starterPost,
		"content/series.yaml":          starterSeries,
	}
	for path, body := range files {
		if !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return err
		}
		slog.Info("wrote", slog.String("path", path))
	}
	return nil
}
