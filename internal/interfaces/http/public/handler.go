package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/infoloom/infoloom/api/internal/metrics"
	publicapp "github.com/infoloom/infoloom/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger          *zap.Logger
	courses         publicapp.CourseQueryService
	forms           publicapp.FormCommandService
	httpClient      *http.Client
	chatUpstreamURL string
	metrics         *metrics.Metrics
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger          *zap.Logger
	Courses         publicapp.CourseQueryService
	Forms           publicapp.FormCommandService
	HTTPClient      *http.Client
	ChatUpstreamURL string
	Metrics         *metrics.Metrics
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Handler{
		logger:          logger,
		courses:         cfg.Courses,
		forms:           cfg.Forms,
		httpClient:      client,
		chatUpstreamURL: cfg.ChatUpstreamURL,
		metrics:         cfg.Metrics,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/ucs", h.ucListHandler())
	r.Get("/ucs/{slug}", h.ucDetailHandler())
	r.Get("/dates", h.datesHandler())
	r.Get("/reports", h.reportListHandler())
	r.Get("/reports/{slug}", h.reportDetailHandler())
	r.Post("/chat", h.chatHandler())
	r.Post("/submit-form", h.submitFormHandler())
}
