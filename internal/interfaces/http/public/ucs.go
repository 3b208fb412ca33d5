package public

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
	publicapp "github.com/infoloom/infoloom/api/internal/public/application"
)

func (h *Handler) ucListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := h.courses.Raw(r.Context())
		if err != nil {
			h.logger.Error("uc dataset read failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Could not read the file.")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			h.logger.Warn("uc dataset write failed", zap.Error(err))
		}
	}
}

func (h *Handler) ucDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		uc, err := h.courses.Detail(r.Context(), slug)
		if err != nil {
			if errors.Is(err, publicapp.ErrUCNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "UC not found")
				return
			}
			h.logger.Error("uc detail failed", zap.String("slug", slug), zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Could not read the file.")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, uc)
	}
}

func (h *Handler) datesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := h.courses.Summaries(r.Context())
		if err != nil {
			h.logger.Error("uc dates read failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Error reading file.")
			return
		}

		body, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			h.logger.Error("uc dates encode failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Error reading file.")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			h.logger.Warn("uc dates write failed", zap.Error(err))
		}
	}
}
