package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
	"github.com/infoloom/infoloom/api/internal/metrics"
)

const (
	chatFailureMessage    = "Erro ao contactar a API externa."
	chatUnexpectedMessage = "A API retornou um conteúdo inesperado (HTML em vez de JSON)."
	chatTooLargeMessage   = "A resposta da API externa excede o tamanho máximo permitido."
)

type chatUnexpectedResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

// chatHandler relays a chat-completion request to the upstream API. It does not
// retry; the upstream's own status is passed through on failure.
func (h *Handler) chatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, common.MaxChatRequestBody))
		if err != nil {
			h.chatFailed(w, errors.Wrap(err, "read chat request"))
			return
		}
		var forward bytes.Buffer
		if err := json.Compact(&forward, body); err != nil {
			h.chatFailed(w, errors.Wrap(err, "parse chat request"))
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.chatUpstreamURL, &forward)
		if err != nil {
			h.chatFailed(w, errors.Wrap(err, "build upstream request"))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := h.httpClient.Do(req)
		if err != nil {
			h.chatFailed(w, errors.Wrap(err, "call upstream"))
			return
		}
		defer res.Body.Close()

		if res.StatusCode < 200 || res.StatusCode > 299 {
			text, _ := io.ReadAll(io.LimitReader(res.Body, common.MaxUpstreamBody))
			h.metrics.ObserveChat(metrics.ChatUpstreamError)
			h.logger.Warn("chat upstream returned error", zap.Int("status", res.StatusCode))
			common.WriteError(h.logger, w, res.StatusCode, fmt.Sprintf("Erro %d: %s", res.StatusCode, common.Truncate(string(text), common.ExcerptRunes)))
			return
		}

		data, err := io.ReadAll(io.LimitReader(res.Body, common.MaxUpstreamBody+1))
		if err != nil {
			h.chatFailed(w, errors.Wrap(err, "read upstream response"))
			return
		}
		if len(data) > common.MaxUpstreamBody {
			h.metrics.ObserveChat(metrics.ChatTooLarge)
			h.logger.Warn("chat upstream response over limit", zap.Int("limit", common.MaxUpstreamBody))
			common.WriteError(h.logger, w, http.StatusBadGateway, chatTooLargeMessage)
			return
		}

		if strings.Contains(res.Header.Get("Content-Type"), "application/json") {
			var parsed json.RawMessage
			if err := json.Unmarshal(data, &parsed); err != nil {
				h.chatFailed(w, errors.Wrap(err, "parse upstream response"))
				return
			}
			h.metrics.ObserveChat(metrics.ChatRelayed)
			w.Header().Set("Access-Control-Allow-Origin", "*")
			common.WriteJSON(h.logger, w, http.StatusOK, parsed)
			return
		}

		h.metrics.ObserveChat(metrics.ChatUnexpected)
		h.logger.Warn("chat upstream returned non-JSON content", zap.String("contentType", res.Header.Get("Content-Type")))
		common.WriteJSON(h.logger, w, http.StatusBadGateway, chatUnexpectedResponse{
			Error: chatUnexpectedMessage,
			Raw:   common.Truncate(string(data), common.ExcerptRunes),
		})
	}
}

func (h *Handler) chatFailed(w http.ResponseWriter, err error) {
	h.metrics.ObserveChat(metrics.ChatFailed)
	h.logger.Error("chat proxy failed", zap.Error(err))
	common.WriteError(h.logger, w, http.StatusInternalServerError, chatFailureMessage)
}
