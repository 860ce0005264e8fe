// Package server runs the resource API listener and the optional admin
// listener, and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
