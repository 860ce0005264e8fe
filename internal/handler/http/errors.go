// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrReadingRequestBody is returned when the PUT body cannot be read,
	// including bodies larger than the configured limit.
	ErrReadingRequestBody = errors.New("error reading request body")
)
