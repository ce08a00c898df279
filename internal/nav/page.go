// Package nav implements the view-state machine: a flat current-page state
// with selection context, the transition rules between pages, and the
// resolution of a state against the catalog into a concrete screen.
package nav

// Page is one of the enumerated screen tokens.
type Page string

// All page tokens.
const (
	PageHome           Page = "home"
	PagePost           Page = "post"
	PageCategories     Page = "categories"
	PageCategory       Page = "category"
	PageTags           Page = "tags"
	PageTag            Page = "tag"
	PageAbout          Page = "about"
	PageLogin          Page = "login"
	PageRegister       Page = "register"
	PageNotifications  Page = "notifications"
	PageProfile        Page = "profile"
	PageHistory        Page = "history"
	PageRandom         Page = "random"
	PageSettings       Page = "settings"
	PageQuiz           Page = "quiz"
	PageAuthor         Page = "author"
	PageSearch         Page = "search"
	PageSaved          Page = "saved"
	PageReadingHistory Page = "reading-history"
)

// pages is the closed set of valid tokens.
var pages = map[Page]bool{
	PageHome: true, PagePost: true, PageCategories: true, PageCategory: true,
	PageTags: true, PageTag: true, PageAbout: true, PageLogin: true,
	PageRegister: true, PageNotifications: true, PageProfile: true,
	PageHistory: true, PageRandom: true, PageSettings: true, PageQuiz: true,
	PageAuthor: true, PageSearch: true, PageSaved: true, PageReadingHistory: true,
}

// Valid reports whether the token is a known page.
func (p Page) Valid() bool { return pages[p] }

// gated pages require an authenticated session.
var gated = map[Page]bool{
	PageProfile:  true,
	PageSettings: true,
}

// Gated reports whether the page requires login.
func (p Page) Gated() bool { return gated[p] }

// selectionPages are entered through a Select call, never by bare token.
var selectionPages = map[Page]bool{
	PagePost:     true,
	PageCategory: true,
	PageTag:      true,
	PageAuthor:   true,
}

// backTargets is the fixed back rule table. Pages absent here treat back
// as a no-op.
var backTargets = map[Page]Page{
	PagePost:           PageHome,
	PageCategory:       PageCategories,
	PageTag:            PageTags,
	PageNotifications:  PageHome,
	PageProfile:        PageHome,
	PageSettings:       PageProfile,
	PageQuiz:           PageHome,
	PageAuthor:         PageHome,
	PageSearch:         PageHome,
	PageSaved:          PageProfile,
	PageReadingHistory: PageProfile,
}
