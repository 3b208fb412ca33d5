package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
	"github.com/infoloom/infoloom/api/internal/public/domain"
)

func (h *Handler) reportListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, domain.Reports())
	}
}

func (h *Handler) reportDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, ok := domain.FindReport(chi.URLParam(r, "slug"))
		if !ok {
			common.WriteError(h.logger, w, http.StatusNotFound, "Report not found")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, report)
	}
}
