package service

import (
	"fmt"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/store"
)

type Services struct {
	AuthService    AuthService
	BlogService    BlogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, NewTokenIssuer(cfg.App, nil), cfg.App, logger),
		BlogService:    NewBlogService(storages.BlogPostRepository, storages.UserRepository, cfg.Blog, logger),
		AppInfoService: appInfoService,
	}, nil
}
