package domain

// DailyQuote is a writing quote surfaced on the home screen.
// Selection is deterministic by day of year, see feed.QuoteOfDay.
type DailyQuote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
