package service

import (
	"github.com/warblerhq/warbler/internal/config"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/store"
)

// Services bundles every domain service behind one construction point.
type Services struct {
	AuthService    AuthService
	MessageService MessageService
	FollowService  FollowService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		MessageService: NewMessageService(storages.MessageRepository, storages.FollowRepository, logger),
		FollowService:  NewFollowService(storages.FollowRepository, storages.UserRepository, logger),
	}
}
