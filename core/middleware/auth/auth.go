package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// Config defines the config for the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string

	// Next defines a function to skip this middleware when it returns true.
	Next func(c *fiber.Ctx) bool
}

// New creates a middleware that rejects requests without a valid API key.
// The key is read from the X-API-Key header, falling back to the api_key query parameter.
func New(config Config) fiber.Handler {
	expected := []byte(config.ApiKey)

	return func(c *fiber.Ctx) error {
		if config.ApiKey == "" || (config.Next != nil && config.Next(c)) {
			return c.Next()
		}

		key := c.Get(HeaderName)
		if key == "" {
			key = c.Query("api_key")
		}

		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}

		return c.Next()
	}
}
