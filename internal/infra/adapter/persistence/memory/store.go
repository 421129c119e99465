// Package memory provides an in-memory implementation of the repository
// interfaces. It is the reference storage backend: all state lives in
// process maps keyed by auto-incrementing ids and is lost on restart.
//
// Every operation takes the store mutex for its whole duration, so each
// operation runs to completion before the next begins regardless of how
// many goroutines the HTTP server spawns.
package memory

import (
	"sync"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Store owns all entity state. Construct one instance at process start
// and hand the typed repositories to the service layer.
type Store struct {
	mu sync.Mutex

	users       map[int64]*entity.User
	categories  map[int64]*entity.Category
	departments map[int64]*entity.Department
	articles    map[int64]*entity.Article

	nextUserID       int64
	nextCategoryID   int64
	nextDepartmentID int64
	nextArticleID    int64

	now func() time.Time
}

// NewStore creates an empty store. Ids start at 1 per entity type and
// are never reused, even after deletion.
func NewStore() *Store {
	return &Store{
		users:            make(map[int64]*entity.User),
		categories:       make(map[int64]*entity.Category),
		departments:      make(map[int64]*entity.Department),
		articles:         make(map[int64]*entity.Article),
		nextUserID:       1,
		nextCategoryID:   1,
		nextDepartmentID: 1,
		nextArticleID:    1,
		now:              time.Now,
	}
}

// enrich resolves an article's references. Returns nil when the category
// or author is missing; a missing department is resolved to nil, not an
// error. Caller must hold s.mu.
func (s *Store) enrich(a *entity.Article) *repository.ArticleWithDetails {
	category, ok := s.categories[a.CategoryID]
	if !ok {
		return nil
	}
	author, ok := s.users[a.AuthorID]
	if !ok {
		return nil
	}
	var department *entity.Department
	if a.DepartmentID != nil {
		if d, ok := s.departments[*a.DepartmentID]; ok {
			department = cloneDepartment(d)
		}
	}
	return &repository.ArticleWithDetails{
		Article:    cloneArticle(a),
		Category:   cloneCategory(category),
		Department: department,
		Author:     cloneUser(author),
	}
}

// The store owns its records; repositories hand out copies so callers
// cannot mutate shared state behind the mutex.

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.DepartmentID != nil {
		id := *u.DepartmentID
		c.DepartmentID = &id
	}
	return &c
}

func cloneCategory(cat *entity.Category) *entity.Category {
	c := *cat
	return &c
}

func cloneDepartment(d *entity.Department) *entity.Department {
	c := *d
	return &c
}

func cloneArticle(a *entity.Article) *entity.Article {
	c := *a
	if a.ImageURL != nil {
		v := *a.ImageURL
		c.ImageURL = &v
	}
	if a.DepartmentID != nil {
		v := *a.DepartmentID
		c.DepartmentID = &v
	}
	if a.BreakingText != nil {
		v := *a.BreakingText
		c.BreakingText = &v
	}
	if a.PublishedAt != nil {
		v := *a.PublishedAt
		c.PublishedAt = &v
	}
	return &c
}
