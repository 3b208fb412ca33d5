package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	adminapp "github.com/infoloom/infoloom/api/internal/admin/application"
	"github.com/infoloom/infoloom/api/internal/admin/domain"
	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
)

type formResponseListResponse struct {
	Items []domain.FormResponse `json:"items"`
	Count int                   `json:"count"`
}

func (h *Handler) formResponseListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := adminapp.FormResponseFilter{FormID: strings.TrimSpace(query.Get("formId"))}
		if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				common.WriteError(h.logger, w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			filter.Limit = limit
		}

		items, err := h.formResponses.List(ctx, filter)
		if err != nil {
			h.logger.Error("form response list failed", zap.String("formId", filter.FormID), zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Could not list form responses")
			return
		}

		if admin, ok := common.AdminFromContext(r.Context()); ok {
			h.logger.Info("form responses listed", zap.String("admin", admin.Subject), zap.Int("count", len(items)))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, formResponseListResponse{Items: items, Count: len(items)})
	}
}
