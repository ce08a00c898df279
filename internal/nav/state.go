package nav

import (
	"github.com/writermorphosis/writermorphosis-server/internal/errors"
)

// State is the full view state for one session. It is a plain serializable
// value; the session store persists it between requests. Selection fields
// persist across unrelated navigations until a transition explicitly
// clears them.
type State struct {
	Page         Page   `json:"page"`
	PostID       string `json:"post_id,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	TagSlug      string `json:"tag_slug,omitempty"`
	AuthorName   string `json:"author_name,omitempty"`
	LoggedIn     bool   `json:"logged_in"`
}

// NewState returns the initial state: home, nothing selected, logged out.
func NewState() State {
	return State{Page: PageHome}
}

// NavigateHome goes home and clears the post, category, and tag selections.
// The author selection survives, matching the other transitions' rule that
// clearing is always explicit.
func (s *State) NavigateHome() {
	s.Page = PageHome
	s.PostID = ""
	s.CategorySlug = ""
	s.TagSlug = ""
}

// Navigate moves to a page by bare token. Unknown tokens are rejected, as
// are pages that need a selection (use the Select transitions for those).
// Gated pages redirect to login when the session is not authenticated.
func (s *State) Navigate(page Page) error {
	if !page.Valid() {
		return errors.InvalidNavigationf("unknown page %q", page)
	}
	if selectionPages[page] {
		return errors.InvalidNavigationf("page %q requires a selection", page)
	}
	if page.Gated() && !s.LoggedIn {
		s.Page = PageLogin
		return nil
	}

	switch page {
	case PageHome:
		s.NavigateHome()
		return nil
	case PageCategories:
		s.CategorySlug = ""
	case PageTags:
		s.TagSlug = ""
	}
	s.Page = page
	return nil
}

// SelectPost opens a post.
func (s *State) SelectPost(id string) error {
	if id == "" {
		return errors.InvalidNavigation("empty post id")
	}
	s.PostID = id
	s.Page = PagePost
	return nil
}

// SelectCategory opens a category.
func (s *State) SelectCategory(slug string) error {
	if slug == "" {
		return errors.InvalidNavigation("empty category slug")
	}
	s.CategorySlug = slug
	s.Page = PageCategory
	return nil
}

// SelectTag opens a tag.
func (s *State) SelectTag(slug string) error {
	if slug == "" {
		return errors.InvalidNavigation("empty tag slug")
	}
	s.TagSlug = slug
	s.Page = PageTag
	return nil
}

// SelectAuthor opens an author page.
func (s *State) SelectAuthor(name string) error {
	if name == "" {
		return errors.InvalidNavigation("empty author name")
	}
	s.AuthorName = name
	s.Page = PageAuthor
	return nil
}

// Back follows the fixed back rule table. Leaving a selection page clears
// its selection. Pages with no rule make back a no-op; that is a valid
// outcome, not an error.
func (s *State) Back() {
	target, ok := backTargets[s.Page]
	if !ok {
		return
	}

	switch s.Page {
	case PagePost:
		s.PostID = ""
	case PageCategory:
		s.CategorySlug = ""
	case PageTag:
		s.TagSlug = ""
	}
	s.Page = target
}

// Login marks the session authenticated and redirects home. There is no
// credential validation here; a real account service would sit in front.
func (s *State) Login() {
	s.LoggedIn = true
	s.NavigateHome()
}

// Register behaves exactly like Login for this system.
func (s *State) Register() {
	s.LoggedIn = true
	s.NavigateHome()
}

// Logout clears the authenticated flag and redirects home.
func (s *State) Logout() {
	s.LoggedIn = false
	s.NavigateHome()
}
