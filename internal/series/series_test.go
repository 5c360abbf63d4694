package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Pepryan/siteforge/internal/content"
)

func intp(v int) *int { return &v }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func post(slug, date string, ref *content.SeriesRef) *content.Post {
	return &content.Post{
		Slug: slug,
		Meta: content.PostMeta{
			Title:  slug,
			Date:   day(date),
			Series: ref,
		},
	}
}

func fixtureStore() *content.Store {
	upd := day("2024-07-01")
	p2 := post("part-two", "2024-06-01", &content.SeriesRef{Name: "K8s", Slug: "k8s", Part: 2})
	p2.Meta.Updated = &upd

	draft := post("part-four", "2024-08-01", &content.SeriesRef{Name: "K8s", Slug: "k8s", Part: 4})
	draft.Meta.Draft = true

	return &content.Store{
		Posts: []*content.Post{
			post("part-three", "2024-06-15", &content.SeriesRef{Name: "K8s", Slug: "k8s", Part: 3}),
			post("part-one", "2024-01-01", &content.SeriesRef{Name: "K8s", Slug: "k8s", Part: 1}),
			p2,
			draft,
			post("standalone", "2024-05-01", nil),
		},
		Series: []*content.SeriesDescriptor{
			{Name: "Unordered", Slug: "unordered", Status: content.SeriesPlanned},
			{Name: "K8s", Slug: "k8s", Status: content.SeriesOngoing, EstimatedParts: intp(5), Order: intp(1), Featured: true, Category: "Infrastructure", Tags: []string{"devops"}},
		},
	}
}

func TestAggregate_SortsPostsByPartAndComputesProgress(t *testing.T) {
	infos := Aggregate(fixtureStore())
	require.Len(t, infos, 2)

	// explicit order sorts before the order-less descriptor (999)
	k8s := infos[0]
	require.Equal(t, "k8s", k8s.Slug)

	require.Equal(t, 3, k8s.CompletedParts, "draft post must not count")
	require.Equal(t, 5, k8s.TotalParts)
	require.Len(t, k8s.Posts, 3)
	require.Equal(t, "part-one", k8s.Posts[0].Slug)
	require.Equal(t, "part-two", k8s.Posts[1].Slug)
	require.Equal(t, "part-three", k8s.Posts[2].Slug)
	require.Equal(t, k8s.CompletedParts, len(k8s.Posts))
}

func TestAggregate_EmptySeries_NotAnError(t *testing.T) {
	infos := Aggregate(fixtureStore())
	empty := BySlug(infos, "unordered")
	require.NotNil(t, empty)
	require.Empty(t, empty.Posts)
	require.Zero(t, empty.CompletedParts)
	require.Zero(t, empty.TotalParts)
}

func TestAggregate_OrderOverridesPart(t *testing.T) {
	store := &content.Store{
		Posts: []*content.Post{
			post("a", "2024-01-01", &content.SeriesRef{Slug: "s", Part: 1, Order: intp(9)}),
			post("b", "2024-01-02", &content.SeriesRef{Slug: "s", Part: 2}),
		},
		Series: []*content.SeriesDescriptor{{Name: "S", Slug: "s", Status: content.SeriesOngoing}},
	}
	infos := Aggregate(store)
	require.Equal(t, "b", infos[0].Posts[0].Slug)
	require.Equal(t, "a", infos[0].Posts[1].Slug)
}

func TestLastMod_MaxOfUpdatedOrDate(t *testing.T) {
	infos := Aggregate(fixtureStore())
	k8s := BySlug(infos, "k8s")
	require.Equal(t, day("2024-07-01"), k8s.LastMod())
}

func TestLastMod_EmptySeries_FallsBackToNow(t *testing.T) {
	infos := Aggregate(fixtureStore())
	empty := BySlug(infos, "unordered")
	require.WithinDuration(t, time.Now(), empty.LastMod(), 5*time.Second)
}

func TestNavigate_PrevNextAndProgress(t *testing.T) {
	store := fixtureStore()
	infos := Aggregate(store)

	mid := store.Posts[2] // part-two
	nav := Navigate(infos, mid)
	require.NotNil(t, nav)
	require.Equal(t, 1, nav.Index)
	require.Equal(t, "part-one", nav.Previous.Slug)
	require.Equal(t, "part-three", nav.Next.Slug)
	require.InDelta(t, 40.0, nav.Progress, 0.001) // 2 of 5 estimated parts

	first := store.Posts[1] // part-one
	nav = Navigate(infos, first)
	require.Nil(t, nav.Previous)
	require.Equal(t, "part-two", nav.Next.Slug)
}

func TestNavigate_ProgressClampedAt100(t *testing.T) {
	store := &content.Store{
		Posts: []*content.Post{
			post("a", "2024-01-01", &content.SeriesRef{Slug: "s", Part: 1}),
			post("b", "2024-01-02", &content.SeriesRef{Slug: "s", Part: 2}),
		},
		Series: []*content.SeriesDescriptor{{Name: "S", Slug: "s", Status: content.SeriesOngoing, EstimatedParts: intp(1)}},
	}
	infos := Aggregate(store)
	nav := Navigate(infos, store.Posts[1])
	require.Equal(t, 100.0, nav.Progress)
}

func TestNavigate_UnknownSeriesOrMissingMembership_ReturnsNil(t *testing.T) {
	store := fixtureStore()
	infos := Aggregate(store)

	require.Nil(t, Navigate(infos, store.Posts[4]), "post without series ref")
	require.Nil(t, Navigate(infos, store.Posts[3]), "draft post is not in the membership")

	orphan := post("orphan", "2024-01-01", &content.SeriesRef{Slug: "nope", Part: 1})
	require.Nil(t, Navigate(infos, orphan))
}

func TestFeaturedByCategorySearch(t *testing.T) {
	infos := Aggregate(fixtureStore())

	feat := Featured(infos)
	require.Len(t, feat, 1)
	require.Equal(t, "k8s", feat[0].Slug)

	require.Len(t, ByCategory(infos, "infrastructure"), 1)
	require.Empty(t, ByCategory(infos, "frontend"))

	require.Len(t, Search(infos, "DEVOPS"), 1, "tag match, case-insensitive")
	require.Len(t, Search(infos, "k8"), 1, "name substring")
	require.Empty(t, Search(infos, "rust"))
	require.Empty(t, Search(infos, "  "))
}
