package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	userUC "newsdesk/internal/usecase/user"
)

// ListHandler returns all staff accounts.
type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP godoc
// @Summary      List staff accounts
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO
// @Router       /users [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetHandler returns a single staff account.
type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP godoc
// @Summary      Get a staff account
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} DTO
// @Failure      404 {string} string "user not found"
// @Router       /users/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/users/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	u, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respondUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}

// CreateHandler creates a staff account.
type CreateHandler struct{ Svc *userUC.Service }

type createRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	DepartmentID *int64 `json:"department_id"`
}

// ServeHTTP godoc
// @Summary      Create a staff account
// @Description  Creates a staff member. Role defaults to editor when omitted.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Account fields"
// @Success      201 {object} DTO
// @Failure      400 {string} string "validation failed"
// @Failure      409 {string} string "email already in use"
// @Router       /users [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), userUC.CreateInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		respondUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// UpdateHandler applies partial updates to a staff account.
type UpdateHandler struct{ Svc *userUC.Service }

type updateRequest struct {
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	DepartmentID *int64  `json:"department_id"`
}

// ServeHTTP godoc
// @Summary      Update a staff account
// @Description  Partially updates an account; omitted fields keep their stored values.
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body updateRequest true "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {string} string "validation failed"
// @Failure      404 {string} string "user not found"
// @Failure      409 {string} string "email already in use"
// @Router       /users/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/users/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	updated, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:           id,
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		respondUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}

// DeleteHandler removes a staff account. Articles authored by the
// account are kept; they drop out of enriched views instead.
type DeleteHandler struct{ Svc *userUC.Service }

// ServeHTTP godoc
// @Summary      Delete a staff account
// @Tags         users
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      204 "No Content"
// @Router       /users/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/users/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respondUserError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondUserError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, userUC.ErrUserNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, userUC.ErrEmailTaken):
		respond.SafeError(w, http.StatusConflict, err)
	case errors.As(err, &verr), errors.Is(err, userUC.ErrInvalidUserID):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// Register wires the staff account routes.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("GET /users", ListHandler{Svc: svc})
	mux.Handle("GET /users/{id}", GetHandler{Svc: svc})
	mux.Handle("POST /users", CreateHandler{Svc: svc})
	mux.Handle("PUT /users/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /users/{id}", DeleteHandler{Svc: svc})
}
