package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/harunoki/petnavi-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger          *log.Logger
	businessQueries publicapp.BusinessQueryService
	reviewQueries   publicapp.ReviewQueryService
	reviewCommands  publicapp.ReviewCommandService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger          *log.Logger
	BusinessQueries publicapp.BusinessQueryService
	ReviewQueries   publicapp.ReviewQueryService
	ReviewCommands  publicapp.ReviewCommandService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:          cfg.Logger,
		businessQueries: cfg.BusinessQueries,
		reviewQueries:   cfg.ReviewQueries,
		reviewCommands:  cfg.ReviewCommands,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/businesses", h.businessSearchHandler())
	r.Get("/businesses/{id}", h.businessDetailHandler())
	r.Get("/reviews", h.reviewListHandler())
	r.With(authMiddleware).Post("/reviews", h.reviewCreateHandler())
	r.With(authMiddleware).Patch("/reviews/{id}", h.reviewUpdateHandler())
	r.With(authMiddleware).Delete("/reviews/{id}", h.reviewDeleteHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}
