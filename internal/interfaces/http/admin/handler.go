package admin

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/infoloom/infoloom/api/internal/admin/application"
	"github.com/infoloom/infoloom/api/internal/interfaces/http/common"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger        *zap.Logger
	formResponses adminapp.FormResponseService
	jwtSecret     []byte
	jwtIssuer     string
}

// Config provides dependencies for Handler.
type Config struct {
	Logger        *zap.Logger
	FormResponses adminapp.FormResponseService
	JWTSecret     []byte
	JWTIssuer     string
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:        logger,
		formResponses: cfg.FormResponses,
		jwtSecret:     cfg.JWTSecret,
		jwtIssuer:     cfg.JWTIssuer,
	}
}

// Register mounts admin routes onto router, all behind bearer auth.
func (h *Handler) Register(r chi.Router) {
	r.Use(common.BearerAuth(h.logger, h.jwtSecret, h.jwtIssuer))
	r.Get("/form-responses", h.formResponseListHandler())
}
