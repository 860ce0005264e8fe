package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/store"
)

type resourceService struct {
	resourceStorage store.ResourceStorage

	logger *logger.Logger
}

func NewResourceService(resourceStorage store.ResourceStorage, logger *logger.Logger) ResourceService {
	return &resourceService{
		resourceStorage: resourceStorage,
		logger:          logger,
	}
}

func (r *resourceService) GetResource(ctx context.Context, id string) (json.RawMessage, error) {
	return r.resourceStorage.Get(ctx, id)
}

func (r *resourceService) PutResource(ctx context.Context, id string, value json.RawMessage) error {
	return r.resourceStorage.Put(ctx, id, value)
}

func (r *resourceService) DeleteResource(ctx context.Context, id string) error {
	return r.resourceStorage.Delete(ctx, id)
}
