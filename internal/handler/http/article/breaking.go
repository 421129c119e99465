package article

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// BreakingHandler serves the breaking-news ticker.
type BreakingHandler struct {
	Svc *articleUC.Service
}

// ServeHTTP godoc
// @Summary      Current breaking news
// @Description  Returns the most recent published article flagged breaking, or null when there is none. Public.
// @Tags         articles
// @Produce      json
// @Success      200 {object} DetailDTO
// @Router       /articles/breaking [get]
func (h BreakingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	breaking, err := h.Svc.Breaking(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if breaking == nil {
		// A quiet newsroom is not an error; the body is a JSON null.
		respond.JSON(w, http.StatusOK, (*DetailDTO)(nil))
		return
	}
	respond.JSON(w, http.StatusOK, toDetailDTO(*breaking))
}
