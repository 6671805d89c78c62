package model

// PostFilters bounds a list query. Nil Limit/Offset disables pagination
// and the full collection is returned.
type PostFilters struct {
	Limit  *int
	Offset *int
}
