package response

// Page is one page of a cursor-paginated listing. NextCursor is nil on the
// final page; Count is the size of this page, not of the whole result set.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
	Count      int     `json:"count"`
}
