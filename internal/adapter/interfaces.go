// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the resource server API.
//
// [ResourceClient] hides the HTTP details of talking to a pod: path escaping,
// credential headers for the bearer and pki auth modes, and decoding of the
// JSON replies. Error values in errors.go are mapped from HTTP status codes
// by mapHTTPError so callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/solid-pod/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resource_client_mock.go -package=mock

// ResourceClient reads and writes resources on a remote pod.
type ResourceClient interface {
	// Profile fetches the profile document served at the root path.
	Profile(ctx context.Context) (models.Profile, error)

	// Get fetches the resource stored under id. Returns [ErrNotFound]
	// (wrapped) if nothing is stored there.
	Get(ctx context.Context, id string) (models.Resource, error)

	// Put creates or overwrites the resource under id. value must be a valid
	// JSON document; the server answers [ErrBadRequest] otherwise.
	Put(ctx context.Context, id string, value json.RawMessage) error

	// Delete removes the resource under id. Returns [ErrNotFound] (wrapped)
	// if it does not exist.
	Delete(ctx context.Context, id string) error

	// Options performs a preflight request against id and returns the
	// response headers (the CORS policy of the pod).
	Options(ctx context.Context, id string) (http.Header, error)
}
