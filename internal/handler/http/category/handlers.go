// Package category exposes the category catalog endpoints. Reads are
// public; create and delete are admin-only via the authorization
// middleware.
package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	categoryUC "newsdesk/internal/usecase/category"
)

// DTO is the wire form of a category.
type DTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

// ListHandler returns all categories.
type ListHandler struct{ Svc *categoryUC.Service }

// ServeHTTP godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetHandler returns one category.
type GetHandler struct{ Svc *categoryUC.Service }

// ServeHTTP godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} DTO
// @Failure      404 {string} string "category not found"
// @Router       /categories/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/categories/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respondCategoryError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}

// CreateHandler adds a category to the catalog.
type CreateHandler struct{ Svc *categoryUC.Service }

type createRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ServeHTTP godoc
// @Summary      Create a category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Category fields"
// @Success      201 {object} DTO
// @Failure      400 {string} string "validation failed"
// @Router       /categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), categoryUC.CreateInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondCategoryError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// DeleteHandler removes a category. Articles filed under it keep the
// stale reference and drop out of enriched views.
type DeleteHandler struct{ Svc *categoryUC.Service }

// ServeHTTP godoc
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      204 "No Content"
// @Router       /categories/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/categories/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respondCategoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondCategoryError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, categoryUC.ErrCategoryNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.As(err, &verr), errors.Is(err, categoryUC.ErrInvalidCategoryID):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// Register wires the category routes.
func Register(mux *http.ServeMux, svc *categoryUC.Service) {
	mux.Handle("GET /categories", ListHandler{Svc: svc})
	mux.Handle("GET /categories/{id}", GetHandler{Svc: svc})
	mux.Handle("POST /categories", CreateHandler{Svc: svc})
	mux.Handle("DELETE /categories/{id}", DeleteHandler{Svc: svc})
}
