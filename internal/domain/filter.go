package domain

// SetFilter defines parameters for listing vocabulary sets.
type SetFilter struct {
	// Category filters sets by exact category. nil means no filter.
	Category *string

	// Level filters sets by exact level (e.g. "Beginner"). nil means no filter.
	Level *string

	// Search performs a case-insensitive substring match over title,
	// description, and category. nil or empty string means no text filter.
	Search *string

	// SortBy determines the sort column: "rating", "title", "created_at".
	// Default ordering: premium last, rating desc, created_at desc.
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of sets to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of sets to skip.
	Offset int
}
