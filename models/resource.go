// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Resource is a single entry of the resource store: an arbitrary JSON
// document addressed by its URL path.
type Resource struct {
	// ID is the resource path without the leading slash
	// (e.g. "notes/a" for PUT /notes/a). Compared by exact string equality.
	ID string `json:"id"`

	// Value is the stored JSON document. It may be an object, an array or
	// a scalar and is returned to clients byte-for-byte.
	Value json.RawMessage `json:"value"`
}

// MessageResponse is the JSON body used for short status replies such as
// {"message":"Resource not found"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages returned by the resource endpoints.
const (
	MessageResourceCreated  = "Resource created"
	MessageResourceNotFound = "Resource not found"
	MessageInvalidJSON      = "Invalid JSON was passed"
	MessageInvalidRequest   = "Invalid request"
	MessageMethodNotAllowed = "Method not allowed"
	MessageInternalError    = "Internal server error"
	MessageUnauthorized     = "Unauthorized"
	MessageAuthNotSupported = "Authentication type not supported"
)
