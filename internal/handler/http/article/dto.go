// Package article exposes the article endpoints: the staff CRUD
// surface and the public published feed and breaking-news ticker.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	"newsdesk/internal/utils/text"
)

// DTO is the wire form of a bare article.
type DTO struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Summary      string     `json:"summary"`
	ImageURL     *string    `json:"image_url,omitempty"`
	CategoryID   int64      `json:"category_id"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	AuthorID     int64      `json:"author_id"`
	IsBreaking   bool       `json:"is_breaking"`
	BreakingText *string    `json:"breaking_text,omitempty"`
	IsPublished  bool       `json:"is_published"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	// ReadingTime is an estimate in minutes derived from the content.
	ReadingTime int       `json:"reading_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryDTO and DepartmentDTO are the embedded catalog records.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type DepartmentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AuthorDTO is the embedded author record. It never carries the
// password.
type AuthorDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DetailDTO is an article with its category, department and author
// resolved inline.
type DetailDTO struct {
	DTO
	Category   CategoryDTO    `json:"category"`
	Department *DepartmentDTO `json:"department,omitempty"`
	Author     AuthorDTO      `json:"author"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		Summary:      a.Summary,
		ImageURL:     a.ImageURL,
		CategoryID:   a.CategoryID,
		DepartmentID: a.DepartmentID,
		AuthorID:     a.AuthorID,
		IsBreaking:   a.IsBreaking,
		BreakingText: a.BreakingText,
		IsPublished:  a.IsPublished,
		PublishedAt:  a.PublishedAt,
		ReadingTime:  text.ReadingTimeMinutes(a.Content),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toDetailDTO(d repository.ArticleWithDetails) DetailDTO {
	out := DetailDTO{
		DTO: toDTO(d.Article),
		Category: CategoryDTO{
			ID:   d.Category.ID,
			Name: d.Category.Name,
			Slug: d.Category.Slug,
		},
		Author: AuthorDTO{
			ID:    d.Author.ID,
			Name:  d.Author.Name,
			Email: d.Author.Email,
			Role:  d.Author.Role,
		},
	}
	if d.Department != nil {
		out.Department = &DepartmentDTO{
			ID:   d.Department.ID,
			Name: d.Department.Name,
			Slug: d.Department.Slug,
		}
	}
	return out
}

func toDetailDTOs(list []repository.ArticleWithDetails) []DetailDTO {
	out := make([]DetailDTO, 0, len(list))
	for _, d := range list {
		out = append(out, toDetailDTO(d))
	}
	return out
}
