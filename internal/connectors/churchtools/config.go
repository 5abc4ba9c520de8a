package churchtools

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// EnvDomain overrides the configured domain.
const EnvDomain = "CHURCHTOOLS_DOMAIN"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Config holds the connection settings of a ChurchTools instance.
type Config struct {
	// BaseURL is the instance URL, e.g. "https://example.church.tools".
	BaseURL string

	// RequestsPerSecond and Burst configure the rate limiter.
	RequestsPerSecond float64
	Burst             int

	Timeout time.Duration
}

// LoadConfig reads the connection settings from the config store.
// CHURCHTOOLS_DOMAIN overrides the configured domain.
func LoadConfig(store driven.ConfigStore) Config {
	cfg := Config{
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
		Timeout:           DefaultTimeout,
	}
	if store != nil {
		cfg.BaseURL = store.GetString(driven.KeyDomain)
		if rps := store.GetFloat(driven.KeyRateLimit); rps > 0 {
			cfg.RequestsPerSecond = rps
		}
		if burst := store.GetInt(driven.KeyBurst); burst > 0 {
			cfg.Burst = burst
		}
	}
	if env := os.Getenv(EnvDomain); env != "" {
		cfg.BaseURL = env
	}
	cfg.BaseURL = NormalizeDomain(cfg.BaseURL)
	return cfg
}

// Validate checks that the configuration can be used to build a client.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: %s", domain.ErrConfigMissing, driven.KeyDomain)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: domain %q", domain.ErrInvalidInput, c.BaseURL)
	}
	return nil
}

// NormalizeDomain adds a missing https scheme and strips trailing slashes.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}
