package handler

import (
	httphandler "github.com/warblerhq/warbler/internal/handler/http"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/service"
)

// Handlers groups the transport-level handlers of the application.
type Handlers struct {
	HTTP *httphandler.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: httphandler.NewHandler(services, logger),
	}
}
