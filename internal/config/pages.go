package config

// StaticPage is one entry of the fixed route table with its crawl hints.
type StaticPage struct {
	Name       string
	Path       string
	Priority   float64
	Changefreq string
	Enabled    bool
	Nav        bool
}

// staticPageTable is the fixed route table. Priority/changefreq pairs are
// crawl hints, not behavior. Content-derived routes (home, blog, archive,
// blog-tags, series) are always enabled regardless of the pages block.
var staticPageTable = []struct {
	name          string
	path          string
	priority      float64
	changefreq    string
	alwaysEnabled bool
}{
	{"home", "/", 1.0, "weekly", true},
	{"about", "/about", 0.8, "monthly", false},
	{"projects", "/projects", 0.8, "monthly", false},
	{"contact", "/contact", 0.5, "yearly", false},
	{"blog", "/blog", 0.9, "daily", true},
	{"archive", "/archive", 0.6, "weekly", true},
	{"blog-tags", "/blog/tags", 0.5, "weekly", true},
	{"series", "/series", 0.8, "weekly", true},
}

// IsPageEnabled reports whether a page participates in the site. Pages
// absent from both the route table and the pages block default to false.
func (c *Config) IsPageEnabled(name string) bool {
	for _, entry := range staticPageTable {
		if entry.name == name && entry.alwaysEnabled {
			return true
		}
	}
	if pc, ok := c.Pages[name]; ok {
		return pc.Enabled
	}
	return false
}

// ShowInNavigation reports whether a page should appear in the nav bar.
// Disabled pages never show regardless of their nav flag.
func (c *Config) ShowInNavigation(name string) bool {
	if !c.IsPageEnabled(name) {
		return false
	}
	// Absent page keys default to false, forced pages included.
	return c.Pages[name].Nav
}

// EnabledStaticPages returns the fixed route table filtered to enabled
// pages, in table order.
func (c *Config) EnabledStaticPages() []StaticPage {
	out := make([]StaticPage, 0, len(staticPageTable))
	for _, entry := range staticPageTable {
		if !entry.alwaysEnabled && !c.IsPageEnabled(entry.name) {
			continue
		}
		out = append(out, StaticPage{
			Name:       entry.name,
			Path:       entry.path,
			Priority:   entry.priority,
			Changefreq: entry.changefreq,
			Enabled:    true,
			Nav:        c.ShowInNavigation(entry.name),
		})
	}
	return out
}
