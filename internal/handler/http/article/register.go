package article

import (
	"net/http"

	"newsdesk/internal/common/pagination"
	articleUC "newsdesk/internal/usecase/article"
)

// Register wires the article routes. The published feed and breaking
// ticker are the public surface; the rest is staff-only and relies on
// the authorization middleware wrapping the whole mux.
func Register(mux *http.ServeMux, svc *articleUC.Service, pcfg pagination.Config) {
	mux.Handle("GET /articles", ListHandler{Svc: svc, Pagination: pcfg})
	mux.Handle("GET /articles/published", PublishedHandler{Svc: svc, Pagination: pcfg})
	mux.Handle("GET /articles/breaking", BreakingHandler{Svc: svc})
	mux.Handle("GET /articles/{id}", GetHandler{Svc: svc})

	mux.Handle("POST /articles", CreateHandler{Svc: svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{Svc: svc})
}
