package feed

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
)

func samplePosts(t *testing.T) []domain.Post {
	t.Helper()
	catalog, err := content.LoadDefault()
	require.NoError(t, err)
	return catalog.Posts()
}

func titles(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Title
	}
	return out
}

func ids(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestPopularSortsByViewsDesc(t *testing.T) {
	posts := samplePosts(t)

	got := Popular(posts, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"3", "5", "1"}, ids(got))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Views, got[i].Views)
	}
}

func TestPopularLengthIsMinOfNAndTotal(t *testing.T) {
	posts := samplePosts(t)

	assert.Len(t, Popular(posts, 100), len(posts))
	assert.Len(t, Popular(posts, 0), 0)
	assert.Len(t, Popular(posts, -1), 0)
}

func TestPopularTiesKeepCollectionOrder(t *testing.T) {
	posts := []domain.Post{
		{ID: "a", Views: 10},
		{ID: "b", Views: 10},
		{ID: "c", Views: 20},
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids(Popular(posts, 3)))
}

func TestLatestSortsByDateDesc(t *testing.T) {
	posts := samplePosts(t)

	got := Latest(posts, len(posts))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(got))
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].PublishedDate.Before(got[i].PublishedDate))
	}
}

func TestByDateMatchesCalendarDay(t *testing.T) {
	posts := samplePosts(t)

	// Time of day is ignored.
	got := ByDate(posts, time.Date(2025, time.October, 20, 23, 59, 0, 0, time.Local))
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestByDateEmptyResultIsNotAnError(t *testing.T) {
	posts := samplePosts(t)

	got := ByDate(posts, time.Date(1999, time.January, 1, 0, 0, 0, 0, time.Local))
	assert.Empty(t, got)
}

func TestByCategory(t *testing.T) {
	posts := samplePosts(t)

	assert.Equal(t, []string{"1", "3", "5"}, ids(ByCategory(posts, "writing-tips")))
	assert.Empty(t, ByCategory(posts, "book-reviews"))
}

func TestByTagNormalizesPostTags(t *testing.T) {
	posts := samplePosts(t)

	assert.Equal(t, []string{"1", "3"}, ids(ByTag(posts, "character-development")))
	assert.Empty(t, ByTag(posts, "grammar"))
}

func TestByAuthorExactMatch(t *testing.T) {
	posts := samplePosts(t)

	assert.Equal(t, []string{"1", "5"}, ids(ByAuthor(posts, "Sarah Mitchell")))
	assert.Empty(t, ByAuthor(posts, "sarah mitchell"))
}

func TestRelatedSameCategoryExcludesSelf(t *testing.T) {
	posts := samplePosts(t)

	got := Related(&posts[0], posts, 3)
	assert.Equal(t, []string{"3", "5"}, ids(got))

	got = Related(&posts[0], posts, 1)
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestSavedPostsKeepSavedOrder(t *testing.T) {
	posts := samplePosts(t)
	user := domain.User{SavedPosts: []string{"5", "1", "missing"}}

	got := SavedPosts(posts, &user)
	assert.Equal(t, []string{"5", "1"}, ids(got))
}

func TestCommentsFor(t *testing.T) {
	catalog, err := content.LoadDefault()
	require.NoError(t, err)

	got := CommentsFor(catalog.Comments(), "1")
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ID)

	assert.Empty(t, CommentsFor(catalog.Comments(), "2"))
}

func TestUnreadCount(t *testing.T) {
	catalog, err := content.LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 2, UnreadCount(catalog.Notifications()))
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	posts := samplePosts(t)

	first := Shuffle(posts, rand.New(rand.NewPCG(1, 2)))
	second := Shuffle(posts, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, ids(first), ids(second))
	assert.ElementsMatch(t, ids(posts), ids(first))
}

func TestSearchEmptyQueryReturnsNil(t *testing.T) {
	posts := samplePosts(t)

	assert.Nil(t, Search(posts, "", SortRelevance))
	assert.Nil(t, Search(posts, "   ", SortRecent))
}

func TestSearchNoMatchesReturnsEmptyNonNil(t *testing.T) {
	posts := samplePosts(t)

	got := Search(posts, "zzzzzz", SortRelevance)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearchDialogueRecent(t *testing.T) {
	posts := samplePosts(t)

	got := Search(posts, "dialogue", SortRecent)
	require.NotEmpty(t, got)
	assert.Equal(t, "Mastering Dialogue: Make Your Characters Speak Naturally", got[0].Title)
}

func TestSearchMatchesAllFields(t *testing.T) {
	posts := samplePosts(t)

	// Author name.
	assert.Equal(t, []string{"3"}, ids(Search(posts, "emily chen", SortRelevance)))
	// Category name.
	assert.Equal(t, []string{"4"}, ids(Search(posts, "poetry", SortRelevance)))
	// Tag name.
	assert.Equal(t, []string{"6"}, ids(Search(posts, "plot", SortRelevance)))
	// Excerpt.
	assert.Equal(t, []string{"5"}, ids(Search(posts, "creative barriers", SortRelevance)))
}

func TestSearchRelevanceRanksTitleMatchesFirst(t *testing.T) {
	posts := samplePosts(t)

	// "writing" hits post 2 in the title and posts 1, 3, 4, 5 only via
	// category, tag, or excerpt. The title match leads; the rest keep
	// collection order.
	got := Search(posts, "writing", SortRelevance)
	assert.Equal(t, []string{"2", "1", "3", "4", "5"}, ids(got))
}

func TestSearchPopularSortsByViews(t *testing.T) {
	posts := samplePosts(t)

	got := Search(posts, "writing", SortPopular)
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Views, got[i].Views)
	}
}

func TestQuoteOfDayDeterministicPerDay(t *testing.T) {
	catalog, err := content.LoadDefault()
	require.NoError(t, err)
	quotes := catalog.Quotes()

	morning := time.Date(2026, time.March, 5, 1, 0, 0, 0, time.Local)
	evening := time.Date(2026, time.March, 5, 23, 30, 0, 0, time.Local)
	assert.Equal(t, QuoteOfDay(quotes, morning), QuoteOfDay(quotes, evening))

	nextDay := QuoteOfDay(quotes, morning.AddDate(0, 0, 1))
	assert.NotEqual(t, QuoteOfDay(quotes, morning).ID, nextDay.ID)
}

func TestQuoteOfDayCyclesThroughAllQuotes(t *testing.T) {
	catalog, err := content.LoadDefault()
	require.NoError(t, err)
	quotes := catalog.Quotes()

	seen := make(map[string]bool)
	day := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < len(quotes); i++ {
		seen[QuoteOfDay(quotes, day.AddDate(0, 0, i)).ID] = true
	}
	assert.Len(t, seen, len(quotes))
}

func TestQuoteOfDayEmptyList(t *testing.T) {
	assert.Nil(t, QuoteOfDay(nil, time.Now()))
}

func TestTagWeightsLinearScale(t *testing.T) {
	tags := []domain.Tag{
		{Slug: "low", Count: 5},
		{Slug: "mid", Count: 10},
		{Slug: "high", Count: 15},
	}

	got := TagWeights(tags)
	require.Len(t, got, 3)
	assert.Equal(t, 14.0, got[0].FontSize)
	assert.Equal(t, 17.0, got[1].FontSize)
	assert.Equal(t, 20.0, got[2].FontSize)
}

func TestTagWeightsAllEqualCounts(t *testing.T) {
	tags := []domain.Tag{
		{Slug: "a", Count: 7},
		{Slug: "b", Count: 7},
		{Slug: "c", Count: 7},
	}

	for _, w := range TagWeights(tags) {
		assert.Equal(t, 14.0, w.FontSize)
	}
}

func TestTagWeightsEmpty(t *testing.T) {
	assert.Nil(t, TagWeights(nil))
}
