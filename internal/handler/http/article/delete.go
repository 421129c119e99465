package article

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// DeleteHandler removes an article. Deleting an id that no longer
// exists still succeeds.
type DeleteHandler struct {
	Svc *articleUC.Service
}

// ServeHTTP godoc
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        id path int true "Article ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "invalid id"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, articleUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
