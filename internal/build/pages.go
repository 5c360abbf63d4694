package build

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/Pepryan/siteforge/internal/content"
	"github.com/Pepryan/siteforge/internal/errors"
	"github.com/Pepryan/siteforge/internal/render"
	"github.com/Pepryan/siteforge/internal/series"
)

const pageLayout = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}} | {{.SiteTitle}}</title>
{{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
<link rel="alternate" type="application/rss+xml" href="/rss.xml">
</head>
<body>
<main>
<h1>{{.Title}}</h1>
{{if .Date}}<p class="meta"><time datetime="{{.Date.Format "2006-01-02"}}">{{.Date.Format "January 2, 2006"}}</time>{{range .Tags}} <a class="tag" href="/blog/tags/{{.}}">{{.}}</a>{{end}}</p>{{end}}
{{.Body}}
{{if .Nav}}<nav class="series-nav">
{{if .Nav.Previous}}<a rel="prev" href="/blog/{{.Nav.Previous.Slug}}">{{.Nav.Previous.Meta.Title}}</a>{{end}}
<span>Part {{.Nav.Index1}} · {{printf "%.0f" .Nav.Progress}}%</span>
{{if .Nav.Next}}<a rel="next" href="/blog/{{.Nav.Next.Slug}}">{{.Nav.Next.Meta.Title}}</a>{{end}}
</nav>{{end}}
</main>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageLayout))

type pageData struct {
	Lang        string
	SiteTitle   string
	Title       string
	Description string
	Date        *time.Time
	Tags        []string
	Body        template.HTML
	Nav         *navData
}

type navData struct {
	Previous *content.Post
	Next     *content.Post
	Index1   int
	Progress float64
}

// renderPages writes one HTML page per published post plus a blog index and
// a series index. Rendering honors ctx cancellation between pages.
func (b *Builder) renderPages(ctx context.Context, outDir string, store *content.Store, infos []*series.Info) error {
	for _, p := range store.PublishedPosts() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.renderPost(outDir, p, infos); err != nil {
			return err
		}
	}
	if err := b.renderPostIndex(outDir, store); err != nil {
		return err
	}
	return b.renderSeriesIndex(outDir, infos)
}

func (b *Builder) renderPost(outDir string, p *content.Post, infos []*series.Info) error {
	body, err := render.HTML(p.Body)
	if err != nil {
		return errors.GenerateError("blog/"+p.Slug, err)
	}

	date := p.Meta.Date
	data := pageData{
		Lang:        b.cfg.Site.Language,
		SiteTitle:   b.cfg.Site.Title,
		Title:       p.Meta.Title,
		Description: render.Description(p),
		Date:        &date,
		Tags:        p.Meta.Tags,
		Body:        template.HTML(body),
	}
	if nav := series.Navigate(infos, p); nav != nil {
		data.Nav = &navData{
			Previous: nav.Previous,
			Next:     nav.Next,
			Index1:   nav.Index + 1,
			Progress: nav.Progress,
		}
	}
	return writePage(outDir, filepath.Join("blog", p.Slug), data)
}

func (b *Builder) renderPostIndex(outDir string, store *content.Store) error {
	var items string
	for _, p := range store.PublishedPosts() {
		items += `<li><a href="/blog/` + p.Slug + `">` + template.HTMLEscapeString(p.Meta.Title) + "</a></li>\n"
	}
	return writePage(outDir, "blog", pageData{
		Lang:      b.cfg.Site.Language,
		SiteTitle: b.cfg.Site.Title,
		Title:     "Blog",
		Body:      template.HTML("<ul>\n" + items + "</ul>"),
	})
}

func (b *Builder) renderSeriesIndex(outDir string, infos []*series.Info) error {
	var items string
	for _, info := range infos {
		items += `<li><a href="/series/` + info.Slug + `">` + template.HTMLEscapeString(info.Name) + "</a> (" +
			template.HTMLEscapeString(string(info.Status)) + ")</li>\n"
	}
	return writePage(outDir, "series", pageData{
		Lang:      b.cfg.Site.Language,
		SiteTitle: b.cfg.Site.Title,
		Title:     "Series",
		Body:      template.HTML("<ul>\n" + items + "</ul>"),
	})
}

func writePage(outDir, rel string, data pageData) error {
	dir := filepath.Join(outDir, rel)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.GenerateError(rel, err)
	}
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return errors.GenerateError(rel, err)
	}
	defer f.Close()
	if err := pageTmpl.Execute(f, data); err != nil {
		return errors.GenerateError(rel, err)
	}
	return nil
}
