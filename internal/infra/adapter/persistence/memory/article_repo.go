package memory

import (
	"context"
	"sort"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository over the shared store.
type ArticleRepo struct{ s *Store }

// NewArticleRepo creates an article repository backed by the given store.
func NewArticleRepo(s *Store) repository.ArticleRepository {
	return &ArticleRepo{s: s}
}

// List returns enriched articles ordered by created_at descending.
// Articles whose category or author is gone are dropped from the page,
// not replaced; pagination applies before enrichment, matching the
// reference storage contract.
func (r *ArticleRepo) List(_ context.Context, limit, offset int) ([]repository.ArticleWithDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := r.collect(func(*entity.Article) bool { return true })
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return r.enrichPage(all, limit, offset), nil
}

// ListPublished returns enriched published articles ordered by
// publication time descending.
func (r *ArticleRepo) ListPublished(_ context.Context, limit, offset int) ([]repository.ArticleWithDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	published := r.collect(func(a *entity.Article) bool { return a.IsPublished })
	sort.Slice(published, func(i, j int) bool {
		return published[i].PublicationTime().After(published[j].PublicationTime())
	})
	return r.enrichPage(published, limit, offset), nil
}

func (r *ArticleRepo) Get(_ context.Context, id int64) (*repository.ArticleWithDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	return r.s.enrich(a), nil
}

func (r *ArticleRepo) GetRaw(_ context.Context, id int64) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	return cloneArticle(a), nil
}

// BreakingNews returns the latest published breaking article, enriched.
func (r *ArticleRepo) BreakingNews(_ context.Context) (*repository.ArticleWithDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest *entity.Article
	for _, a := range r.s.articles {
		if !a.IsBreaking || !a.IsPublished {
			continue
		}
		if latest == nil || a.PublicationTime().After(latest.PublicationTime()) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}
	return r.s.enrich(latest), nil
}

func (r *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	article.ID = r.s.nextArticleID
	r.s.nextArticleID++
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.IsPublished {
		article.PublishedAt = &now
	} else {
		article.PublishedAt = nil
	}
	r.s.articles[article.ID] = cloneArticle(article)
	return nil
}

// Update merges the patch over the stored record while holding the store
// mutex, so two concurrent partial updates on the same article cannot
// read the same base and erase each other's fields. published_at is
// stamped only on the first transition to published and survives
// unpublish/republish cycles.
func (r *ArticleRepo) Update(_ context.Context, id int64, patch repository.ArticlePatch) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.articles[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Title != nil {
		stored.Title = *patch.Title
	}
	if patch.Content != nil {
		stored.Content = *patch.Content
	}
	if patch.Summary != nil {
		stored.Summary = *patch.Summary
	}
	if patch.ImageURL != nil {
		v := *patch.ImageURL
		stored.ImageURL = &v
	}
	if patch.CategoryID != nil {
		stored.CategoryID = *patch.CategoryID
	}
	if patch.DepartmentID != nil {
		v := *patch.DepartmentID
		stored.DepartmentID = &v
	}
	if patch.IsBreaking != nil {
		stored.IsBreaking = *patch.IsBreaking
	}
	if patch.BreakingText != nil {
		v := *patch.BreakingText
		stored.BreakingText = &v
	}
	if patch.IsPublished != nil {
		stored.IsPublished = *patch.IsPublished
	}
	now := r.s.now()
	stored.UpdatedAt = now
	if stored.IsPublished && stored.PublishedAt == nil {
		stored.PublishedAt = &now
	}
	return cloneArticle(stored), nil
}

func (r *ArticleRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.articles, id)
	return nil
}

func (r *ArticleRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.articles)), nil
}

// collect snapshots articles matching the filter. Caller must hold s.mu.
func (r *ArticleRepo) collect(keep func(*entity.Article) bool) []*entity.Article {
	out := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// enrichPage applies offset/limit to the sorted slice, then enriches,
// dropping articles whose join fails. Caller must hold s.mu.
func (r *ArticleRepo) enrichPage(sorted []*entity.Article, limit, offset int) []repository.ArticleWithDetails {
	if offset < 0 {
		offset = 0
	}
	if offset > len(sorted) {
		offset = len(sorted)
	}
	end := len(sorted)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]repository.ArticleWithDetails, 0, end-offset)
	for _, a := range sorted[offset:end] {
		if enriched := r.s.enrich(a); enriched != nil {
			page = append(page, *enriched)
		}
	}
	return page
}
