package browser

// Config holds configuration for the browser opener.
type Config struct {
	// Enabled controls whether the browser is opened once the server is up.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// DelaySeconds is how long to wait after the server is ready before
	// opening the browser.
	DelaySeconds int `mapstructure:"delay_seconds" default:"1"`
}
