package storefront

import "github.com/dmitrymomot/storefront/pkg/config"

// Config holds the settings needed to wire an App.
type Config struct {
	// APIURL is the backend origin. Empty means requests go to the page origin.
	APIURL   string `env:"STOREFRONT_API_URL"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"SERVICE_NAME" envDefault:"storefront"`
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadConfig reads Config from the environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
