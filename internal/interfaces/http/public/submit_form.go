package public

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
	"github.com/infoloom/infoloom/api/internal/metrics"
	publicapp "github.com/infoloom/infoloom/api/internal/public/application"
)

type invalidPayloadResponse struct {
	Error    string `json:"error"`
	Received any    `json:"received"`
}

type submitFormResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func (h *Handler) submitFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			h.metrics.ObserveSubmission(metrics.SubmissionRejected)
			common.WriteError(h.logger, w, http.StatusBadRequest, "Content-Type deve ser application/json")
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, common.MaxFormRequestBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.metrics.ObserveSubmission(metrics.SubmissionRejected)
				common.WriteError(h.logger, w, http.StatusRequestEntityTooLarge, "Body demasiado grande")
				return
			}
			h.metrics.ObserveSubmission(metrics.SubmissionFailed)
			common.WriteInternalError(h.logger, w, errors.Wrap(err, "read form payload"))
			return
		}
		if len(body) == 0 {
			h.metrics.ObserveSubmission(metrics.SubmissionRejected)
			common.WriteError(h.logger, w, http.StatusBadRequest, "Body vazio")
			return
		}

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			h.metrics.ObserveSubmission(metrics.SubmissionFailed)
			common.WriteInternalError(h.logger, w, errors.Wrap(err, "parse form payload"))
			return
		}

		envelope, ok := publicapp.ValidEnvelope(payload)
		if !ok {
			h.metrics.ObserveSubmission(metrics.SubmissionRejected)
			h.logger.Debug("form payload rejected", zap.Any("received", payload))
			common.WriteJSON(h.logger, w, http.StatusBadRequest, invalidPayloadResponse{
				Error:    "Invalid payload structure",
				Received: payload,
			})
			return
		}

		id, err := h.forms.Submit(r.Context(), envelope)
		if err != nil {
			h.metrics.ObserveSubmission(metrics.SubmissionFailed)
			common.WriteInternalError(h.logger, w, err)
			return
		}

		h.metrics.ObserveSubmission(metrics.SubmissionStored)
		h.logger.Info("form response stored", zap.String("id", id), zap.Any("formId", envelope[publicapp.FieldFormID]))
		common.WriteJSON(h.logger, w, http.StatusOK, submitFormResponse{Success: true, ID: id})
	}
}
