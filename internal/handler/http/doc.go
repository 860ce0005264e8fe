// Package http implements the HTTP transport of the resource server.
//
// Init wires the public router: the profile document at "/", and every other
// path as a JSON resource gated by the read or write auth mode. InitAdmin
// wires the admin router served on a separate listener. CORS headers, trace
// ids, access logging, panic recovery, compression and request timeouts are
// handled here before requests reach the service layer.
package http
