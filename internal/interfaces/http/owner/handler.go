package owner

import (
	"log"

	"github.com/go-chi/chi/v5"
	ownerapp "github.com/harunoki/petnavi-services/api/internal/owner/application"
)

// Handler wires owner HTTP endpoints to the owner application service.
type Handler struct {
	logger          *log.Logger
	businessService ownerapp.BusinessService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger          *log.Logger
	BusinessService ownerapp.BusinessService
}

// NewHandler constructs an owner HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:          cfg.Logger,
		businessService: cfg.BusinessService,
	}
}

// Register mounts all owner routes onto the router.
// 認証ミドルウェアは呼び出し側 (server) がルートグループ単位で適用する。
func (h *Handler) Register(r chi.Router) {
	r.Post("/businesses", h.businessCreateHandler())
	r.Patch("/businesses/{id}", h.businessUpdateHandler())
	r.Delete("/businesses/{id}", h.businessDeleteHandler())
}
