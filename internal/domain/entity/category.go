package entity

// Category is a top-level section articles are filed under.
// Immutable after creation except by deletion.
type Category struct {
	ID   int64
	Name string
	Slug string
}

// Department is an editorial desk. Referenced optionally by both
// articles and users.
type Department struct {
	ID   int64
	Name string
	Slug string
}
