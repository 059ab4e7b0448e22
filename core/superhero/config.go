package superhero

// Config holds configuration for the remote superhero catalog.
type Config struct {
	// BaseURL is the API root that serves all.json and biography/{id}.json.
	BaseURL string `mapstructure:"base_url" default:"https://cdn.jsdelivr.net/gh/akabab/superhero-api@0.3.0/api"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"hero-catalog"`
}
