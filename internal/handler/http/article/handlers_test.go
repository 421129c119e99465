package article

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/repository"
	articleUC "newsdesk/internal/usecase/article"
)

var (
	stubCategory = &entity.Category{ID: 1, Name: "Politics", Slug: "politics"}
	stubAuthor   = &entity.User{ID: 1, Name: "Ada", Email: "ada@newsdesk.local", Role: entity.RoleAdmin}
)

type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newStubRepo(articles ...*entity.Article) *stubRepo {
	r := &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
	for _, a := range articles {
		a.ID = r.nextID
		r.data[a.ID] = a
		r.nextID++
	}
	return r
}

func (r *stubRepo) enrich(a *entity.Article) repository.ArticleWithDetails {
	return repository.ArticleWithDetails{Article: a, Category: stubCategory, Author: stubAuthor}
}

func (r *stubRepo) List(_ context.Context, limit, offset int) ([]repository.ArticleWithDetails, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []repository.ArticleWithDetails
	for id := r.nextID - 1; id >= 1; id-- {
		if a, ok := r.data[id]; ok {
			out = append(out, r.enrich(a))
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubRepo) ListPublished(ctx context.Context, limit, offset int) ([]repository.ArticleWithDetails, error) {
	all, err := r.List(ctx, r.len(), 0)
	if err != nil {
		return nil, err
	}
	var out []repository.ArticleWithDetails
	for _, d := range all {
		if d.Article.IsPublished {
			out = append(out, d)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubRepo) len() int { return len(r.data) }

func (r *stubRepo) Get(_ context.Context, id int64) (*repository.ArticleWithDetails, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	d := r.enrich(a)
	return &d, nil
}

func (r *stubRepo) GetRaw(_ context.Context, id int64) (*entity.Article, error) {
	return r.data[id], nil
}

func (r *stubRepo) BreakingNews(context.Context) (*repository.ArticleWithDetails, error) {
	if r.err != nil {
		return nil, r.err
	}
	for id := r.nextID - 1; id >= 1; id-- {
		if a, ok := r.data[id]; ok && a.IsBreaking && a.IsPublished {
			d := r.enrich(a)
			return &d, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) Create(_ context.Context, a *entity.Article) error {
	a.ID = r.nextID
	r.nextID++
	now := time.Now()
	a.CreatedAt, a.UpdatedAt = now, now
	if a.IsPublished {
		a.PublishedAt = &now
	}
	r.data[a.ID] = a
	return nil
}

func (r *stubRepo) Update(_ context.Context, id int64, patch repository.ArticlePatch) (*entity.Article, error) {
	a, ok := r.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Summary != nil {
		a.Summary = *patch.Summary
	}
	if patch.ImageURL != nil {
		a.ImageURL = patch.ImageURL
	}
	if patch.CategoryID != nil {
		a.CategoryID = *patch.CategoryID
	}
	if patch.DepartmentID != nil {
		a.DepartmentID = patch.DepartmentID
	}
	if patch.IsBreaking != nil {
		a.IsBreaking = *patch.IsBreaking
	}
	if patch.BreakingText != nil {
		a.BreakingText = patch.BreakingText
	}
	if patch.IsPublished != nil {
		a.IsPublished = *patch.IsPublished
	}
	a.UpdatedAt = time.Now()
	if a.IsPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}
	return a, nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	delete(r.data, id)
	return nil
}

func (r *stubRepo) Count(context.Context) (int64, error) {
	return int64(len(r.data)), nil
}

func testService(repo *stubRepo) *articleUC.Service {
	return &articleUC.Service{Repo: repo}
}

func pcfg() pagination.Config { return pagination.DefaultConfig() }

func TestListHandler_ReturnsPage(t *testing.T) {
	repo := newStubRepo(
		&entity.Article{Title: "Draft", Content: "c", Summary: "s", CategoryID: 1, AuthorID: 1},
		&entity.Article{Title: "Live", Content: "c", Summary: "s", CategoryID: 1, AuthorID: 1, IsPublished: true},
	)
	h := ListHandler{Svc: testService(repo), Pagination: pcfg()}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Data       []DetailDTO         `json:"data"`
		Pagination pagination.Metadata `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("len(data) = %d, want 2 (drafts included)", len(resp.Data))
	}
	if resp.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Pagination.Total)
	}
	if resp.Data[0].Category.Slug != "politics" {
		t.Errorf("category not enriched: %+v", resp.Data[0].Category)
	}
	if resp.Data[0].Author.Email != "ada@newsdesk.local" {
		t.Errorf("author not enriched: %+v", resp.Data[0].Author)
	}
}

func TestListHandler_InvalidPagination(t *testing.T) {
	h := ListHandler{Svc: testService(newStubRepo()), Pagination: pcfg()}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles?limit=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPublishedHandler_ExcludesDrafts(t *testing.T) {
	repo := newStubRepo(
		&entity.Article{Title: "Draft", Content: "c", Summary: "s", CategoryID: 1, AuthorID: 1},
		&entity.Article{Title: "Live", Content: "c", Summary: "s", CategoryID: 1, AuthorID: 1, IsPublished: true},
	)
	h := PublishedHandler{Svc: testService(repo), Pagination: pcfg()}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/published", nil))

	var list []DetailDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Live" {
		t.Errorf("published list = %+v, want only the published article", list)
	}
}

func TestBreakingHandler_NullWhenQuiet(t *testing.T) {
	h := BreakingHandler{Svc: testService(newStubRepo())}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/breaking", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "null" {
		t.Errorf("body = %q, want null", got)
	}
}

func TestBreakingHandler_ReturnsTicker(t *testing.T) {
	text := "Major story developing"
	repo := newStubRepo(&entity.Article{
		Title: "Flash", Content: "c", Summary: "s", CategoryID: 1, AuthorID: 1,
		IsBreaking: true, BreakingText: &text, IsPublished: true,
	})
	h := BreakingHandler{Svc: testService(repo)}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/breaking", nil))

	var dto DetailDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.BreakingText == nil || *dto.BreakingText != text {
		t.Errorf("breaking_text = %v, want %q", dto.BreakingText, text)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	h := GetHandler{Svc: testService(newStubRepo())}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/99", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetHandler_BadID(t *testing.T) {
	h := GetHandler{Svc: testService(newStubRepo())}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func withClaims(r *http.Request) *http.Request {
	return r.WithContext(auth.WithClaims(r.Context(), &auth.Claims{
		UserID: 7, Email: "editor@newsdesk.local", Role: auth.RoleEditor,
	}))
}

func TestCreateHandler_AuthorFromToken(t *testing.T) {
	repo := newStubRepo()
	h := CreateHandler{Svc: testService(repo)}

	body := `{"title":"T","content":"C","summary":"S","category_id":1,"author_id":999}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var dto DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.AuthorID != 7 {
		t.Errorf("author_id = %d, want 7 (from the token, not the body)", dto.AuthorID)
	}
	if dto.IsPublished || dto.PublishedAt != nil {
		t.Errorf("draft should not carry a publication stamp: %+v", dto)
	}
}

func TestCreateHandler_PublishStampsTime(t *testing.T) {
	h := CreateHandler{Svc: testService(newStubRepo())}

	body := `{"title":"T","content":"C","summary":"S","category_id":1,"is_published":true}`
	req := withClaims(httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var dto DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.PublishedAt == nil {
		t.Error("published article must carry published_at")
	}
}

func TestCreateHandler_ValidationFailure(t *testing.T) {
	h := CreateHandler{Svc: testService(newStubRepo())}

	req := withClaims(httptest.NewRequest(http.MethodPost, "/articles",
		strings.NewReader(`{"content":"C","summary":"S","category_id":1}`)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateHandler_NoClaims(t *testing.T) {
	h := CreateHandler{Svc: testService(newStubRepo())}

	req := httptest.NewRequest(http.MethodPost, "/articles",
		strings.NewReader(`{"title":"T","content":"C","summary":"S","category_id":1}`))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestUpdateHandler_PartialMerge(t *testing.T) {
	repo := newStubRepo(&entity.Article{
		Title: "Old title", Content: "Old content", Summary: "S",
		CategoryID: 1, AuthorID: 1,
	})
	h := UpdateHandler{Svc: testService(repo)}

	req := httptest.NewRequest(http.MethodPut, "/articles/1",
		strings.NewReader(`{"title":"New title"}`))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var dto DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Title != "New title" {
		t.Errorf("title = %q, want updated", dto.Title)
	}
	if dto.Content != "Old content" {
		t.Errorf("content = %q, want untouched", dto.Content)
	}
}

func TestUpdateHandler_NotFound(t *testing.T) {
	h := UpdateHandler{Svc: testService(newStubRepo())}

	req := httptest.NewRequest(http.MethodPut, "/articles/42",
		strings.NewReader(`{"title":"x"}`))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := newStubRepo(&entity.Article{Title: "T", Content: "C", Summary: "S", CategoryID: 1, AuthorID: 1})
	h := DeleteHandler{Svc: testService(repo)}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/articles/1", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	// Deleting again is still 204.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/articles/1", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("repeat delete status = %d, want 204", rec.Code)
	}
}
