package domain

// Category groups posts by subject area. Slug is unique within the catalog.
// Count is a denormalized article count and is treated as the authoritative
// display value; it is not recomputed from the post list.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Tag labels posts across categories. Slug is unique within the catalog;
// post tag names normalize to tag slugs for matching.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"` // denormalized, authoritative for display
}
