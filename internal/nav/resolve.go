package nav

import (
	"github.com/writermorphosis/writermorphosis-server/internal/domain"
)

// Catalog is the slice of the content catalog that resolution needs.
type Catalog interface {
	Posts() []domain.Post
	PostByID(id string) *domain.Post
	CategoryBySlug(slug string) *domain.Category
	TagBySlug(slug string) *domain.Tag
}

// Screen is the resolved view for a state: which page renders plus the
// records its selection resolved to. Exactly the fields for the active
// page are set.
type Screen struct {
	Page       Page             `json:"page"`
	Post       *domain.Post     `json:"post,omitempty"`
	Category   *domain.Category `json:"category,omitempty"`
	Tag        *domain.Tag      `json:"tag,omitempty"`
	AuthorName string           `json:"author_name,omitempty"`
	FellBack   bool             `json:"fell_back,omitempty"`
}

// Resolve maps a state onto a screen. A selection page whose selection is
// missing or no longer matches a record falls back to the home screen
// instead of failing; FellBack marks that this happened. Gated pages for an
// unauthenticated session resolve to login.
func Resolve(state State, catalog Catalog) Screen {
	if state.Page.Gated() && !state.LoggedIn {
		return Screen{Page: PageLogin}
	}

	switch state.Page {
	case PagePost:
		post := catalog.PostByID(state.PostID)
		if state.PostID == "" || post == nil {
			return fallback()
		}
		return Screen{Page: PagePost, Post: post}

	case PageCategory:
		category := catalog.CategoryBySlug(state.CategorySlug)
		if state.CategorySlug == "" || category == nil {
			return fallback()
		}
		return Screen{Page: PageCategory, Category: category}

	case PageTag:
		tag := catalog.TagBySlug(state.TagSlug)
		if state.TagSlug == "" || tag == nil {
			return fallback()
		}
		return Screen{Page: PageTag, Tag: tag}

	case PageAuthor:
		if state.AuthorName == "" || !hasAuthor(catalog, state.AuthorName) {
			return fallback()
		}
		return Screen{Page: PageAuthor, AuthorName: state.AuthorName}

	case PageHome, PageCategories, PageTags, PageAbout, PageLogin,
		PageRegister, PageNotifications, PageProfile, PageHistory,
		PageRandom, PageSettings, PageQuiz, PageSearch, PageSaved,
		PageReadingHistory:
		return Screen{Page: state.Page}
	}

	// Unknown token in a stored state. Transitions reject these, so only a
	// corrupted record gets here; treat it like a stale selection.
	return fallback()
}

func fallback() Screen {
	return Screen{Page: PageHome, FellBack: true}
}

func hasAuthor(catalog Catalog, name string) bool {
	posts := catalog.Posts()
	for i := range posts {
		if posts[i].Author.Name == name {
			return true
		}
	}
	return false
}
