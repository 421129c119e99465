package article

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// GetHandler serves a single enriched article for staff.
type GetHandler struct {
	Svc *articleUC.Service
}

// ServeHTTP godoc
// @Summary      Get an article
// @Description  Returns one article with category, department and author resolved. Staff only.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DetailDTO
// @Failure      400 {string} string "invalid id"
// @Failure      404 {string} string "article not found"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	detail, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, articleUC.ErrArticleNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, articleUC.ErrInvalidArticleID):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDetailDTO(*detail))
}
