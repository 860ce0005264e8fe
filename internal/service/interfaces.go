//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=ResourceServiceWrapper
package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/solid-pod/models"
)

// ResourceService reads and writes JSON resources addressed by path.
type ResourceService interface {
	GetResource(ctx context.Context, id string) (json.RawMessage, error)
	PutResource(ctx context.Context, id string, value json.RawMessage) error
	DeleteResource(ctx context.Context, id string) error
}

// ResourceServiceWrapper defines middleware composition for ResourceService.
// Implementations wrap an existing ResourceService to add behavior such as
// validating.
type ResourceServiceWrapper interface {
	Wrap(ResourceService) ResourceService // returns a decorated ResourceService applying additional behavior
}

// AuthService decides whether a request carrying header passes the gate
// selected by mode.
type AuthService interface {
	Authorize(ctx context.Context, mode models.AuthMode, header http.Header) error
}

type ProfileService interface {
	GetProfile(ctx context.Context) models.Profile
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
