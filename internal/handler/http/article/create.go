package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// CreateHandler creates articles on behalf of the authenticated staff
// member.
type CreateHandler struct {
	Svc *articleUC.Service
}

type createRequest struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Summary      string  `json:"summary"`
	ImageURL     *string `json:"image_url"`
	CategoryID   int64   `json:"category_id"`
	DepartmentID *int64  `json:"department_id"`
	IsBreaking   bool    `json:"is_breaking"`
	BreakingText *string `json:"breaking_text"`
	IsPublished  bool    `json:"is_published"`
}

// ServeHTTP godoc
// @Summary      Create an article
// @Description  Creates an article authored by the authenticated user. Publishing at creation stamps published_at.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Article fields"
// @Success      201 {object} DTO
// @Failure      400 {string} string "validation failed"
// @Failure      401 {string} string "authentication required"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), articleUC.CreateInput{
		Title:        req.Title,
		Content:      req.Content,
		Summary:      req.Summary,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		DepartmentID: req.DepartmentID,
		AuthorID:     claims.UserID,
		IsBreaking:   req.IsBreaking,
		BreakingText: req.BreakingText,
		IsPublished:  req.IsPublished,
	})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(created))
}
