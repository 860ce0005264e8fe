package service

import (
	"context"

	"github.com/MKhiriev/solid-pod/models"
)

type profileService struct{}

// NewProfileService returns a ProfileService serving the fixed pod profile.
// The document does not depend on stored resources.
func NewProfileService() ProfileService {
	return &profileService{}
}

func (p *profileService) GetProfile(ctx context.Context) models.Profile {
	return models.DefaultProfile()
}
