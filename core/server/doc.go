// Package server holds the HTTP server configuration section.
//
// The actual Fiber application is assembled in cmd/start.go; this package only
// defines the settings it is built from (listen port, CORS origins).
package server
