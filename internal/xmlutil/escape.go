// Package xmlutil holds the shared XML text-escaping helper used by the
// sitemap and RSS serializers.
package xmlutil

import "strings"

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape escapes the five XML-special characters in text content. The
// replacement is a single pass, so the ampersand rule never re-escapes
// entities produced by the other rules.
func Escape(s string) string { return replacer.Replace(s) }
