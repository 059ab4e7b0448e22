// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listen port, the API key protecting every route,
// and the publisher tag used to filter the remote catalog.
package server
