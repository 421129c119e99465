package article

import (
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/respond"
	articleUC "newsdesk/internal/usecase/article"
)

// ListHandler serves the staff article list, drafts included.
type ListHandler struct {
	Svc        *articleUC.Service
	Pagination pagination.Config
}

// ServeHTTP godoc
// @Summary      List all articles
// @Description  Returns every article, drafts included, newest first. Staff only.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page start"
// @Success      200 {object} pagination.Response[DetailDTO]
// @Failure      400 {string} string "invalid pagination parameters"
// @Failure      401 {string} string "authentication required"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.List(r.Context(), params)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK,
		pagination.NewResponse(toDetailDTOs(result.Data), result.Pagination))
}
