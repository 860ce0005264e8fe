package service

import (
	"fmt"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/store"
)

type Services struct {
	AuthService     AuthService
	ResourceService ResourceService
	ProfileService  ProfileService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	resourceService := NewResourceValidationService().
		Wrap(NewResourceService(storages.ResourceStorage, logger))

	return &Services{
		AuthService:     NewAuthService(cfg.Auth, logger),
		ResourceService: resourceService,
		ProfileService:  NewProfileService(),
		AppInfoService:  appInfoService,
	}, nil
}
