package article

import (
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// PublishedHandler serves the public reader feed.
type PublishedHandler struct {
	Svc        *articleUC.Service
	Pagination pagination.Config
}

// ServeHTTP godoc
// @Summary      List published articles
// @Description  Returns published articles ordered by publication time, newest first. Public.
// @Tags         articles
// @Produce      json
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page start"
// @Success      200 {array} DetailDTO
// @Failure      400 {string} string "invalid pagination parameters"
// @Router       /articles/published [get]
func (h PublishedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := h.Svc.ListPublished(r.Context(), params)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDetailDTOs(list))
}
