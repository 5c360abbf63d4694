package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/content"
)

type parsedRSS struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Title         string       `xml:"title"`
		Link          string       `xml:"link"`
		Description   string       `xml:"description"`
		LastBuildDate string       `xml:"lastBuildDate"`
		Items         []parsedItem `xml:"item"`
	} `xml:"channel"`
}

type parsedItem struct {
	Title         string   `xml:"title"`
	Link          string   `xml:"link"`
	Description   string   `xml:"description"`
	PubDate       string   `xml:"pubDate"`
	Categories    []string `xml:"category"`
	Author        string   `xml:"author"`
	LastBuildDate string   `xml:"lastBuildDate"`
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testConfig() *config.Config {
	return &config.Config{Site: config.SiteConfig{
		URL:         "https://x.dev",
		Title:       "X Notes",
		Description: "Notes on infra",
		Author:      "Ryan",
		Email:       "ryan@x.dev",
		Language:    "en",
	}}
}

func testStore() *content.Store {
	updated := day("2024-07-01")
	return &content.Store{
		Posts: []*content.Post{
			{Slug: "old", Meta: content.PostMeta{Title: "Old & Rusty", Date: day("2024-01-01"), Summary: "An <old> post", Tags: []string{"go", "web"}}},
			{Slug: "new", Meta: content.PostMeta{Title: "New", Date: day("2024-06-01"), Updated: &updated, Description: "fallback desc"}},
			{Slug: "draft", Meta: content.PostMeta{Title: "Draft", Date: day("2024-08-01"), Draft: true}},
			{Slug: "hidden", Meta: content.PostMeta{Title: "Hidden", Date: day("2024-08-02"), Hidden: true}},
		},
	}
}

func parse(t *testing.T, doc string) parsedRSS {
	t.Helper()
	var out parsedRSS
	require.NoError(t, xml.Unmarshal([]byte(doc), &out))
	return out
}

func TestMarshalRSS_PublishedOnly_SortedByDateDescending(t *testing.T) {
	doc := MarshalRSS(testConfig(), testStore(), day("2024-08-15"))
	rss := parse(t, doc)

	require.Len(t, rss.Channel.Items, 2, "draft and hidden posts excluded")
	require.Equal(t, "New", rss.Channel.Items[0].Title)
	require.Equal(t, "Old & Rusty", rss.Channel.Items[1].Title)
}

func TestMarshalRSS_ChannelMetadataFromConfig(t *testing.T) {
	now := time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC)
	rss := parse(t, MarshalRSS(testConfig(), testStore(), now))

	require.Equal(t, "X Notes", rss.Channel.Title)
	require.Equal(t, "https://x.dev/", rss.Channel.Link)
	require.Equal(t, "Notes on infra", rss.Channel.Description)
	require.Equal(t, now.Format(time.RFC1123Z), rss.Channel.LastBuildDate)
}

func TestMarshalRSS_ItemFields(t *testing.T) {
	rss := parse(t, MarshalRSS(testConfig(), testStore(), day("2024-08-15")))

	old := rss.Channel.Items[1]
	require.Equal(t, "https://x.dev/blog/old", old.Link)
	require.Equal(t, "An <old> post", old.Description, "summary preferred, escaping round-trips")
	require.Equal(t, []string{"go", "web"}, old.Categories)
	require.Equal(t, "ryan@x.dev (Ryan)", old.Author)
	require.Empty(t, old.LastBuildDate, "no updated date, no item lastBuildDate")

	newest := rss.Channel.Items[0]
	require.Equal(t, "fallback desc", newest.Description, "description used when summary absent")
	require.Equal(t, day("2024-07-01").Format(time.RFC1123Z), newest.LastBuildDate)
}

func TestMarshalRSS_FeedLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Feed.Limit = 1
	rss := parse(t, MarshalRSS(cfg, testStore(), day("2024-08-15")))
	require.Len(t, rss.Channel.Items, 1)
	require.Equal(t, "New", rss.Channel.Items[0].Title)
}

func TestMarshalRSS_DescriptionDerivedFromBody(t *testing.T) {
	store := &content.Store{Posts: []*content.Post{
		{
			Slug: "plain",
			Meta: content.PostMeta{Title: "Plain", Date: day("2024-01-01")},
			Body: []byte("Deploying with confidence takes a repeatable pipeline.\n\n```\nmake deploy\n```\n"),
		},
	}}
	rss := parse(t, MarshalRSS(testConfig(), store, day("2024-08-15")))
	require.Equal(t, "Deploying with confidence takes a repeatable pipeline.",
		rss.Channel.Items[0].Description, "body excerpt used when summary and description are absent")
}

func TestMarshalRSS_EmptyDescriptionAllowed(t *testing.T) {
	store := &content.Store{Posts: []*content.Post{
		{Slug: "bare", Meta: content.PostMeta{Title: "Bare", Date: day("2024-01-01")}},
	}}
	rss := parse(t, MarshalRSS(testConfig(), store, day("2024-08-15")))
	require.Len(t, rss.Channel.Items, 1)
	require.Empty(t, rss.Channel.Items[0].Description)
}

func TestMarshalRSS_PerPostAuthorOverridesSite(t *testing.T) {
	store := &content.Store{Posts: []*content.Post{
		{Slug: "guest", Meta: content.PostMeta{Title: "Guest", Date: day("2024-01-01"), Author: "Guest Writer"}},
	}}
	rss := parse(t, MarshalRSS(testConfig(), store, day("2024-08-15")))
	require.Equal(t, "ryan@x.dev (Guest Writer)", rss.Channel.Items[0].Author)
}
