package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// UpdateHandler applies partial updates to an article.
type UpdateHandler struct {
	Svc *articleUC.Service
}

type updateRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	Summary      *string `json:"summary"`
	ImageURL     *string `json:"image_url"`
	CategoryID   *int64  `json:"category_id"`
	DepartmentID *int64  `json:"department_id"`
	IsBreaking   *bool   `json:"is_breaking"`
	BreakingText *string `json:"breaking_text"`
	IsPublished  *bool   `json:"is_published"`
}

// ServeHTTP godoc
// @Summary      Update an article
// @Description  Partially updates an article; omitted fields keep their stored values. The first publish stamps published_at permanently.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        request body updateRequest true "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {string} string "validation failed"
// @Failure      404 {string} string "article not found"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), articleUC.UpdateInput{
		ID:           id,
		Title:        req.Title,
		Content:      req.Content,
		Summary:      req.Summary,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		DepartmentID: req.DepartmentID,
		IsBreaking:   req.IsBreaking,
		BreakingText: req.BreakingText,
		IsPublished:  req.IsPublished,
	})
	if err != nil {
		var verr *entity.ValidationError
		switch {
		case errors.Is(err, articleUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.As(err, &verr), errors.Is(err, articleUC.ErrInvalidArticleID):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(updated))
}
