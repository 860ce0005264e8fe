// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/solid-pod/models"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler and
// answers with the JSON message body used by every other error response.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, models.MessageMethodNotAllowed, http.StatusMethodNotAllowed)
}
