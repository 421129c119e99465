package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/repository"
)

var detailCols = []string{
	"a_id", "title", "content", "summary", "image_url",
	"category_id", "department_id", "author_id",
	"is_breaking", "breaking_text", "is_published", "published_at",
	"created_at", "updated_at",
	"c_id", "c_name", "c_slug",
	"d_id", "d_name", "d_slug",
	"u_id", "u_email", "u_name", "u_role", "u_department_id",
	"u_created_at", "u_updated_at",
}

func optInt(p *int64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optStr(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func optTime(p *time.Time) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func addDetailRow(rows *sqlmock.Rows, d *repository.ArticleWithDetails) *sqlmock.Rows {
	a := d.Article
	var deptID, deptName, deptSlug interface{}
	if d.Department != nil {
		deptID, deptName, deptSlug = d.Department.ID, d.Department.Name, d.Department.Slug
	}
	return rows.AddRow(
		a.ID, a.Title, a.Content, a.Summary, optStr(a.ImageURL),
		a.CategoryID, optInt(a.DepartmentID), a.AuthorID,
		a.IsBreaking, optStr(a.BreakingText), a.IsPublished, optTime(a.PublishedAt),
		a.CreatedAt, a.UpdatedAt,
		d.Category.ID, d.Category.Name, d.Category.Slug,
		deptID, deptName, deptSlug,
		d.Author.ID, d.Author.Email, d.Author.Name, d.Author.Role,
		optInt(d.Author.DepartmentID), d.Author.CreatedAt, d.Author.UpdatedAt,
	)
}

func sampleDetails(id int64, published bool) *repository.ArticleWithDetails {
	now := time.Now().Truncate(time.Second)
	a := &entity.Article{
		ID: id, Title: "City council vote", Content: "Full report.",
		Summary: "Vote passed.", CategoryID: 1, AuthorID: 1,
		IsPublished: published,
		CreatedAt:   now, UpdatedAt: now,
	}
	if published {
		a.PublishedAt = &now
	}
	return &repository.ArticleWithDetails{
		Article:  a,
		Category: &entity.Category{ID: 1, Name: "Politics", Slug: "politics"},
		Author: &entity.User{
			ID: 1, Email: "admin@newsdesk.local", Name: "System Administrator",
			Role: entity.RoleAdmin, CreatedAt: now, UpdatedAt: now,
		},
	}
}

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleDetails(1, true)
	mock.ExpectQuery(`FROM articles a`).
		WithArgs(int64(1)).
		WillReturnRows(addDetailRow(sqlmock.NewRows(detailCols), want))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// The INNER JOINs mean a dangling category or author yields no row at
// all, which surfaces as a plain miss rather than an error.
func TestArticleRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`FROM articles a`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(detailCols))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get expected nil, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_NullDepartment(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := sampleDetails(2, false)
	mock.ExpectQuery(`FROM articles a`).
		WithArgs(int64(2)).
		WillReturnRows(addDetailRow(sqlmock.NewRows(detailCols), want))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Department != nil {
		t.Fatalf("Get expected nil department, got %+v", got.Department)
	}
	if got.Article.PublishedAt != nil {
		t.Fatal("Get expected nil published_at for a draft")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows(detailCols)
	addDetailRow(rows, sampleDetails(2, true))
	addDetailRow(rows, sampleDetails(1, false))

	mock.ExpectQuery(`FROM \(`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	repo := postgres.NewArticleRepo(db)
	got, err := repo.List(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List expected 2 articles, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_ListPublished(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows(detailCols)
	addDetailRow(rows, sampleDetails(3, true))

	mock.ExpectQuery(`WHERE is_published`).
		WithArgs(10, 20).
		WillReturnRows(rows)

	repo := postgres.NewArticleRepo(db)
	got, err := repo.ListPublished(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("ListPublished err=%v", err)
	}
	if len(got) != 1 || !got[0].Article.IsPublished {
		t.Fatalf("ListPublished unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_BreakingNews_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`a\.is_breaking AND a\.is_published`).
		WillReturnRows(sqlmock.NewRows(detailCols))

	repo := postgres.NewArticleRepo(db)
	got, err := repo.BreakingNews(context.Background())
	if err != nil {
		t.Fatalf("BreakingNews err=%v", err)
	}
	if got != nil {
		t.Fatalf("BreakingNews expected nil, got %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Create_PublishedStampsPublishedAt(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO articles`)).
		WithArgs("Title", "Body", "Sum", nil, int64(1), nil, int64(1),
			false, nil, true).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "published_at", "created_at", "updated_at",
		}).AddRow(int64(5), now, now, now))

	repo := postgres.NewArticleRepo(db)
	a := &entity.Article{
		Title: "Title", Content: "Body", Summary: "Sum",
		CategoryID: 1, AuthorID: 1, IsPublished: true,
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if a.ID != 5 {
		t.Fatalf("Create expected id 5, got %d", a.ID)
	}
	if a.PublishedAt == nil {
		t.Fatal("Create expected published_at to be stamped")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

var rawCols = []string{
	"id", "title", "content", "summary", "image_url",
	"category_id", "department_id", "author_id",
	"is_breaking", "breaking_text", "is_published", "published_at",
	"created_at", "updated_at",
}

// A patch carrying only a title must reach the row with NULLs for every
// other column, so the stored values fall out of the COALESCEs intact.
func TestArticleRepo_Update_PatchLeavesOtherColumnsAlone(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	first := time.Now().Add(-time.Hour)
	later := time.Now()
	mock.ExpectQuery(`UPDATE articles`).
		WithArgs("New Title", nil, nil, nil, nil, nil,
			nil, nil, nil, int64(5)).
		WillReturnRows(sqlmock.NewRows(rawCols).
			AddRow(int64(5), "New Title", "Body", "Sum", nil,
				int64(1), nil, int64(1),
				false, nil, true, first,
				first, later))

	repo := postgres.NewArticleRepo(db)
	title := "New Title"
	a, err := repo.Update(context.Background(), 5, repository.ArticlePatch{Title: &title})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if a.Title != "New Title" || a.Content != "Body" {
		t.Fatalf("Update returned title %q content %q", a.Title, a.Content)
	}
	if a.PublishedAt == nil || !a.PublishedAt.Equal(first) {
		t.Fatalf("Update expected published_at %v to survive, got %v", first, a.PublishedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`UPDATE articles`).
		WithArgs("Title", nil, nil, nil, nil, nil,
			nil, nil, nil, int64(999)).
		WillReturnRows(sqlmock.NewRows(rawCols))

	repo := postgres.NewArticleRepo(db)
	title := "Title"
	_, err := repo.Update(context.Background(), 999, repository.ArticlePatch{Title: &title})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`DELETE FROM articles`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewArticleRepo(db)
	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Count(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM articles`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	repo := postgres.NewArticleRepo(db)
	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count err=%v", err)
	}
	if count != 12 {
		t.Fatalf("Count expected 12, got %d", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
