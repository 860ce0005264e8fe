package service

import (
	"errors"

	"github.com/MKhiriev/solid-pod/models"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnsupportedAuthMode = models.ErrUnsupportedAuthMode

	ErrInvalidJSON     = errors.New("invalid json was passed")
	ErrEmptyResourceID = errors.New("resource id is empty")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
