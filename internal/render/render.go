// Package render converts Markdown bodies to HTML and derives plain-text
// excerpts for feed descriptions.
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	xhtml "golang.org/x/net/html"

	"github.com/Pepryan/siteforge/internal/content"
)

// DescriptionRunes is the rune budget for excerpts derived from a post body.
const DescriptionRunes = 160

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// HTML renders a Markdown body (frontmatter already removed) to HTML.
func HTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Description returns the post's short description for feed items and page
// metadata: the frontmatter summary or description when present, otherwise
// an excerpt derived from the body's visible text. Render failures yield "".
func Description(p *content.Post) string {
	if s := p.Excerpt(); s != "" {
		return s
	}
	s, err := Excerpt(p.Body, DescriptionRunes)
	if err != nil {
		return ""
	}
	return s
}

// Excerpt renders the body and extracts the first maxRunes runes of visible
// text, whitespace-collapsed. Code blocks are skipped so an excerpt never
// starts with a snippet. Returns "" for empty bodies.
func Excerpt(body []byte, maxRunes int) (string, error) {
	rendered, err := HTML(body)
	if err != nil {
		return "", err
	}
	text := visibleText(rendered)
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text, nil
	}
	// Cut at the last word boundary before the limit.
	cut := string(runes[:maxRunes])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…", nil
}

// visibleText walks the parsed HTML and joins text nodes, skipping code
// and script-like containers.
func visibleText(rendered string) string {
	root, err := xhtml.Parse(strings.NewReader(rendered))
	if err != nil {
		// html.Parse is error-tolerant; a hard failure means no usable text.
		return ""
	}

	var parts []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			switch n.Data {
			case "pre", "code", "script", "style":
				return
			}
		}
		if n.Type == xhtml.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
