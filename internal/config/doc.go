// Package config provides configuration loading, merging, and validation
// facilities for the solid-pod server.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The command line client
// reads its smaller [ClientConfig] through [GetClientConfig].
package config
