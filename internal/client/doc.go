// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of a solid-pod server.
//
// Supported commands:
//
//	profile
//	get     <id>
//	put     <id> <json>   (use "-" to read the document from stdin)
//	delete  <id>
//	options <id>
package client
