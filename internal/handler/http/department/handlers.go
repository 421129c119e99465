// Package department exposes the department catalog endpoints.
// Reads are public; create and delete are admin-only via the
// authorization middleware.
package department

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	departmentUC "newsdesk/internal/usecase/department"
)

// DTO is the wire form of a department.
type DTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toDTO(d *entity.Department) DTO {
	return DTO{ID: d.ID, Name: d.Name, Slug: d.Slug}
}

// ListHandler returns all departments.
type ListHandler struct{ Svc *departmentUC.Service }

// ServeHTTP godoc
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200 {array} DTO
// @Router       /departments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(departments))
	for _, d := range departments {
		out = append(out, toDTO(d))
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetHandler returns one department.
type GetHandler struct{ Svc *departmentUC.Service }

// ServeHTTP godoc
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Param        id path int true "Department ID"
// @Success      200 {object} DTO
// @Failure      404 {string} string "department not found"
// @Router       /departments/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/departments/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	d, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respondDepartmentError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(d))
}

// CreateHandler adds a department to the catalog.
type CreateHandler struct{ Svc *departmentUC.Service }

type createRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ServeHTTP godoc
// @Summary      Create a department
// @Tags         departments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Department fields"
// @Success      201 {object} DTO
// @Failure      400 {string} string "validation failed"
// @Router       /departments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), departmentUC.CreateInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		respondDepartmentError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// DeleteHandler removes a department. Articles and users referencing
// it keep the stale id; enriched reads resolve it to null.
type DeleteHandler struct{ Svc *departmentUC.Service }

// ServeHTTP godoc
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        id path int true "Department ID"
// @Success      204 "No Content"
// @Router       /departments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/departments/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respondDepartmentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondDepartmentError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, departmentUC.ErrDepartmentNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.As(err, &verr), errors.Is(err, departmentUC.ErrInvalidDepartmentID):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// Register wires the department routes.
func Register(mux *http.ServeMux, svc *departmentUC.Service) {
	mux.Handle("GET /departments", ListHandler{Svc: svc})
	mux.Handle("GET /departments/{id}", GetHandler{Svc: svc})
	mux.Handle("POST /departments", CreateHandler{Svc: svc})
	mux.Handle("DELETE /departments/{id}", DeleteHandler{Svc: svc})
}
