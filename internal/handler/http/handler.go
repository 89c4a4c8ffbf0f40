package http

import (
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/service"
	"github.com/warblerhq/warbler/internal/utils"
)

type Handler struct {
	services *service.Services

	logger  *logger.Logger
	traceID *utils.UUIDGenerator
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
		traceID:  utils.NewUUIDGenerator(),
	}
}

// actorFromRequest returns the authenticated actor's id placed in the
// request context by the auth middleware. ok == false means the request is
// anonymous.
func actorFromRequest(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
