package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

type ArticleRepo struct{ db DB }

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func observe(operation string, start time.Time) {
	metrics.RecordDBQuery(operation, time.Since(start))
}

// detailColumns is the column list shared by every enriched query.
// An INNER JOIN to categories and users drops articles whose category
// or author is gone; departments join with LEFT JOIN so a missing
// department resolves to nil instead of excluding the article.
const detailColumns = `
	a.id, a.title, a.content, a.summary, a.image_url,
	a.category_id, a.department_id, a.author_id,
	a.is_breaking, a.breaking_text, a.is_published, a.published_at,
	a.created_at, a.updated_at,
	c.id, c.name, c.slug,
	d.id, d.name, d.slug,
	u.id, u.email, u.name, u.role, u.department_id, u.created_at, u.updated_at`

const detailJoins = `
INNER JOIN categories c ON c.id = a.category_id
INNER JOIN users u ON u.id = a.author_id
LEFT JOIN departments d ON d.id = a.department_id`

func scanDetails(row interface{ Scan(...interface{}) error }) (*repository.ArticleWithDetails, error) {
	var (
		a entity.Article
		c entity.Category
		u entity.User

		imageURL     sql.NullString
		departmentID sql.NullInt64
		breakingText sql.NullString
		publishedAt  sql.NullTime

		deptID   sql.NullInt64
		deptName sql.NullString
		deptSlug sql.NullString

		authorDeptID sql.NullInt64
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Summary, &imageURL,
		&a.CategoryID, &departmentID, &a.AuthorID,
		&a.IsBreaking, &breakingText, &a.IsPublished, &publishedAt,
		&a.CreatedAt, &a.UpdatedAt,
		&c.ID, &c.Name, &c.Slug,
		&deptID, &deptName, &deptSlug,
		&u.ID, &u.Email, &u.Name, &u.Role, &authorDeptID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		a.ImageURL = &imageURL.String
	}
	if departmentID.Valid {
		a.DepartmentID = &departmentID.Int64
	}
	if breakingText.Valid {
		a.BreakingText = &breakingText.String
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}
	if authorDeptID.Valid {
		u.DepartmentID = &authorDeptID.Int64
	}

	details := &repository.ArticleWithDetails{
		Article:  &a,
		Category: &c,
		Author:   &u,
	}
	if deptID.Valid {
		details.Department = &entity.Department{
			ID:   deptID.Int64,
			Name: deptName.String,
			Slug: deptSlug.String,
		}
	}
	return details, nil
}

func (repo *ArticleRepo) collect(rows *sql.Rows) ([]repository.ArticleWithDetails, error) {
	defer func() { _ = rows.Close() }()

	articles := make([]repository.ArticleWithDetails, 0, 16)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		articles = append(articles, *details)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) List(ctx context.Context, limit, offset int) ([]repository.ArticleWithDetails, error) {
	defer observe("articles.list", time.Now())
	// Pagination applies before the joins: an article whose enrichment
	// fails consumes its slot in the page rather than pulling in the
	// next stored article.
	query := `
SELECT` + detailColumns + `
FROM (
	SELECT * FROM articles
	ORDER BY created_at DESC, id DESC
	LIMIT $1 OFFSET $2
) a` + detailJoins + `
ORDER BY a.created_at DESC, a.id DESC`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return repo.collect(rows)
}

func (repo *ArticleRepo) ListPublished(ctx context.Context, limit, offset int) ([]repository.ArticleWithDetails, error) {
	defer observe("articles.list_published", time.Now())
	query := `
SELECT` + detailColumns + `
FROM (
	SELECT * FROM articles
	WHERE is_published
	ORDER BY COALESCE(published_at, created_at) DESC, id DESC
	LIMIT $1 OFFSET $2
) a` + detailJoins + `
ORDER BY COALESCE(a.published_at, a.created_at) DESC, a.id DESC`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}
	return repo.collect(rows)
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*repository.ArticleWithDetails, error) {
	defer observe("articles.get", time.Now())
	query := `
SELECT` + detailColumns + `
FROM articles a` + detailJoins + `
WHERE a.id = $1
LIMIT 1`
	details, err := scanDetails(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return details, nil
}

// rawColumns is the unenriched article column list shared by GetRaw and
// the RETURNING clause of Update.
const rawColumns = `id, title, content, summary, image_url,
	category_id, department_id, author_id,
	is_breaking, breaking_text, is_published, published_at,
	created_at, updated_at`

func scanRawArticle(row interface{ Scan(...interface{}) error }) (*entity.Article, error) {
	var (
		a entity.Article

		imageURL     sql.NullString
		departmentID sql.NullInt64
		breakingText sql.NullString
		publishedAt  sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Summary, &imageURL,
		&a.CategoryID, &departmentID, &a.AuthorID,
		&a.IsBreaking, &breakingText, &a.IsPublished, &publishedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		a.ImageURL = &imageURL.String
	}
	if departmentID.Valid {
		a.DepartmentID = &departmentID.Int64
	}
	if breakingText.Valid {
		a.BreakingText = &breakingText.String
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}
	return &a, nil
}

func (repo *ArticleRepo) GetRaw(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("articles.get_raw", time.Now())
	const query = `
SELECT ` + rawColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	a, err := scanRawArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetRaw: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) BreakingNews(ctx context.Context) (*repository.ArticleWithDetails, error) {
	defer observe("articles.breaking", time.Now())
	query := `
SELECT` + detailColumns + `
FROM articles a` + detailJoins + `
WHERE a.is_breaking AND a.is_published
ORDER BY COALESCE(a.published_at, a.created_at) DESC, a.id DESC
LIMIT 1`
	details, err := scanDetails(repo.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("BreakingNews: %w", err)
	}
	return details, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer observe("articles.create", time.Now())
	const query = `
INSERT INTO articles (
	title, content, summary, image_url,
	category_id, department_id, author_id,
	is_breaking, breaking_text, is_published, published_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	CASE WHEN $10 THEN now() END)
RETURNING id, published_at, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.Summary, article.ImageURL,
		article.CategoryID, article.DepartmentID, article.AuthorID,
		article.IsBreaking, article.BreakingText, article.IsPublished,
	).Scan(&article.ID, &article.PublishedAt, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, id int64, patch repository.ArticlePatch) (*entity.Article, error) {
	defer observe("articles.update", time.Now())
	// The merge happens inside the single UPDATE: COALESCE falls back to
	// the stored column for every absent patch field, so two concurrent
	// partial updates on the same row cannot erase each other's changes.
	// published_at is stamped exactly once, on the first transition to
	// published, and survives later unpublishes.
	const query = `
UPDATE articles
SET title = COALESCE($1, title),
	content = COALESCE($2, content),
	summary = COALESCE($3, summary),
	image_url = COALESCE($4, image_url),
	category_id = COALESCE($5, category_id),
	department_id = COALESCE($6, department_id),
	is_breaking = COALESCE($7, is_breaking),
	breaking_text = COALESCE($8, breaking_text),
	is_published = COALESCE($9, is_published),
	published_at = CASE WHEN COALESCE($9, is_published) AND published_at IS NULL THEN now() ELSE published_at END,
	updated_at = now()
WHERE id = $10
RETURNING ` + rawColumns
	a, err := scanRawArticle(repo.db.QueryRowContext(ctx, query,
		patch.Title, patch.Content, patch.Summary, patch.ImageURL,
		patch.CategoryID, patch.DepartmentID,
		patch.IsBreaking, patch.BreakingText, patch.IsPublished,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	defer observe("articles.delete", time.Now())
	const query = `DELETE FROM articles WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	defer observe("articles.count", time.Now())
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	metrics.UpdateArticlesTotal(count)
	return count, nil
}
