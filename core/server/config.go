package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Publisher is the publisher tag a remote record must carry to enter the catalog.
	Publisher string `mapstructure:"publisher" default:"Marvel Comics"`
}

// DefaultPublisher is used when no publisher is configured.
const DefaultPublisher = "Marvel Comics"

// PublisherOrDefault returns the configured publisher, falling back to DefaultPublisher.
func (c Config) PublisherOrDefault() string {
	if p := strings.TrimSpace(c.Publisher); p != "" {
		return p
	}
	return DefaultPublisher
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
