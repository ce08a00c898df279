package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writermorphosis/writermorphosis-server/internal/content"
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

func TestNewStateStartsAtHome(t *testing.T) {
	state := NewState()
	assert.Equal(t, PageHome, state.Page)
	assert.False(t, state.LoggedIn)
}

func TestNavigateRejectsUnknownPage(t *testing.T) {
	state := NewState()
	err := state.Navigate("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidNavigation))
	assert.Equal(t, PageHome, state.Page)
}

func TestNavigateRejectsSelectionPages(t *testing.T) {
	state := NewState()
	for _, page := range []Page{PagePost, PageCategory, PageTag, PageAuthor} {
		err := state.Navigate(page)
		require.Error(t, err, "page %s", page)
		assert.True(t, errors.Is(err, errors.ErrInvalidNavigation), "page %s", page)
		assert.Equal(t, PageHome, state.Page, "page %s", page)
	}
}

func TestNavigateGatedPagesRedirectToLogin(t *testing.T) {
	state := NewState()

	require.NoError(t, state.Navigate(PageProfile))
	assert.Equal(t, PageLogin, state.Page)

	require.NoError(t, state.Navigate(PageSettings))
	assert.Equal(t, PageLogin, state.Page)

	state.Login()
	require.NoError(t, state.Navigate(PageProfile))
	assert.Equal(t, PageProfile, state.Page)
	require.NoError(t, state.Navigate(PageSettings))
	assert.Equal(t, PageSettings, state.Page)
}

func TestNavigateHomeClearsSelections(t *testing.T) {
	state := NewState()
	require.NoError(t, state.SelectPost("1"))
	require.NoError(t, state.SelectCategory("poetry"))
	require.NoError(t, state.SelectTag("plot"))
	require.NoError(t, state.SelectAuthor("Sarah Mitchell"))

	state.NavigateHome()
	assert.Equal(t, PageHome, state.Page)
	assert.Empty(t, state.PostID)
	assert.Empty(t, state.CategorySlug)
	assert.Empty(t, state.TagSlug)
	// Author selection is only cleared explicitly.
	assert.Equal(t, "Sarah Mitchell", state.AuthorName)
}

func TestSelectionsAreIndependent(t *testing.T) {
	state := NewState()
	require.NoError(t, state.SelectCategory("poetry"))
	require.NoError(t, state.SelectPost("4"))

	// Opening a post does not clear the pending category selection.
	assert.Equal(t, PagePost, state.Page)
	assert.Equal(t, "poetry", state.CategorySlug)
}

func TestSelectRejectsEmptyValues(t *testing.T) {
	state := NewState()
	require.Error(t, state.SelectPost(""))
	require.Error(t, state.SelectCategory(""))
	require.Error(t, state.SelectTag(""))
	require.Error(t, state.SelectAuthor(""))
}

func TestNavigateToListPagesClearsTheirSelection(t *testing.T) {
	state := NewState()
	require.NoError(t, state.SelectCategory("poetry"))
	require.NoError(t, state.Navigate(PageCategories))
	assert.Empty(t, state.CategorySlug)

	require.NoError(t, state.SelectTag("plot"))
	require.NoError(t, state.Navigate(PageTags))
	assert.Empty(t, state.TagSlug)
}

func TestBackRuleTable(t *testing.T) {
	cases := []struct {
		from Page
		to   Page
	}{
		{PageNotifications, PageHome},
		{PageProfile, PageHome},
		{PageSettings, PageProfile},
		{PageQuiz, PageHome},
		{PageSearch, PageHome},
		{PageSaved, PageProfile},
		{PageReadingHistory, PageProfile},
	}
	for _, tc := range cases {
		state := State{Page: tc.from, LoggedIn: true}
		state.Back()
		assert.Equal(t, tc.to, state.Page, "back from %s", tc.from)
	}
}

func TestBackFromSelectionPagesClears(t *testing.T) {
	state := NewState()
	require.NoError(t, state.SelectPost("1"))
	state.Back()
	assert.Equal(t, PageHome, state.Page)
	assert.Empty(t, state.PostID)

	require.NoError(t, state.SelectCategory("poetry"))
	state.Back()
	assert.Equal(t, PageCategories, state.Page)
	assert.Empty(t, state.CategorySlug)

	require.NoError(t, state.SelectTag("plot"))
	state.Back()
	assert.Equal(t, PageTags, state.Page)
	assert.Empty(t, state.TagSlug)
}

func TestBackFromCategoryIgnoresHistory(t *testing.T) {
	// The rule table is fixed; how the session got to the category page
	// does not matter.
	state := NewState()
	require.NoError(t, state.SelectPost("1"))
	require.NoError(t, state.Navigate(PageQuiz))
	require.NoError(t, state.SelectCategory("fiction"))

	state.Back()
	assert.Equal(t, PageCategories, state.Page)
	assert.Empty(t, state.CategorySlug)
}

func TestBackIsNoopWithoutRule(t *testing.T) {
	for _, page := range []Page{PageHome, PageCategories, PageTags, PageAbout, PageHistory, PageRandom, PageLogin, PageRegister} {
		state := State{Page: page}
		state.Back()
		assert.Equal(t, page, state.Page, "back from %s", page)
	}
}

func TestLoginLogoutRedirectHome(t *testing.T) {
	state := NewState()
	require.NoError(t, state.SelectPost("1"))

	state.Login()
	assert.True(t, state.LoggedIn)
	assert.Equal(t, PageHome, state.Page)
	assert.Empty(t, state.PostID)

	state.Logout()
	assert.False(t, state.LoggedIn)
	assert.Equal(t, PageHome, state.Page)

	state.Register()
	assert.True(t, state.LoggedIn)
	assert.Equal(t, PageHome, state.Page)
}

func testCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	catalog, err := content.LoadDefault()
	require.NoError(t, err)
	return catalog
}

func TestResolveSelectionPages(t *testing.T) {
	catalog := testCatalog(t)

	screen := Resolve(State{Page: PagePost, PostID: "3"}, catalog)
	require.NotNil(t, screen.Post)
	assert.Equal(t, PagePost, screen.Page)
	assert.Equal(t, "3", screen.Post.ID)

	screen = Resolve(State{Page: PageCategory, CategorySlug: "poetry"}, catalog)
	require.NotNil(t, screen.Category)
	assert.Equal(t, "Poetry", screen.Category.Name)

	screen = Resolve(State{Page: PageTag, TagSlug: "plot"}, catalog)
	require.NotNil(t, screen.Tag)

	screen = Resolve(State{Page: PageAuthor, AuthorName: "Emily Chen"}, catalog)
	assert.Equal(t, "Emily Chen", screen.AuthorName)
}

func TestResolveStaleSelectionFallsBackHome(t *testing.T) {
	catalog := testCatalog(t)

	cases := []State{
		{Page: PagePost},
		{Page: PagePost, PostID: "gone"},
		{Page: PageCategory, CategorySlug: "gone"},
		{Page: PageTag, TagSlug: "gone"},
		{Page: PageAuthor, AuthorName: "Nobody"},
	}
	for _, state := range cases {
		screen := Resolve(state, catalog)
		assert.Equal(t, PageHome, screen.Page, "state %+v", state)
		assert.True(t, screen.FellBack)
	}
}

func TestResolveGatedPagesWithoutLogin(t *testing.T) {
	catalog := testCatalog(t)

	screen := Resolve(State{Page: PageProfile}, catalog)
	assert.Equal(t, PageLogin, screen.Page)

	screen = Resolve(State{Page: PageSettings, LoggedIn: true}, catalog)
	assert.Equal(t, PageSettings, screen.Page)
}

func TestResolveCorruptedPageFallsBack(t *testing.T) {
	catalog := testCatalog(t)

	screen := Resolve(State{Page: "junk"}, catalog)
	assert.Equal(t, PageHome, screen.Page)
	assert.True(t, screen.FellBack)
}
