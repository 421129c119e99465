package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total  int64 `json:"total"`  // Total number of items across all pages
	Limit  int   `json:"limit"`  // Items per page
	Offset int   `json:"offset"` // Number of items skipped
}

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., ArticleDTO).
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates a paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
