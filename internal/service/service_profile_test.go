package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileService_GetProfile(t *testing.T) {
	svc := NewProfileService()

	p := svc.GetProfile(context.Background())

	assert.Equal(t, "", p.ID)
	assert.Equal(t, "Will Smith", p.PrimaryTopic.Name)
	assert.Equal(t, []string{"Person", "Actor"}, p.PrimaryTopic.Type)
}

func TestProfileService_GetProfile_ReturnsIndependentCopies(t *testing.T) {
	svc := NewProfileService()
	ctx := context.Background()

	first := svc.GetProfile(ctx)
	first.PrimaryTopic.Type[0] = "Robot"
	first.Context = nil

	second := svc.GetProfile(ctx)
	assert.Equal(t, "Person", second.PrimaryTopic.Type[0])
	assert.Len(t, second.Context, 2)
}
