package config

import "os"

// Config holds every environment-derived setting. It is loaded once in main
// and passed to each component at construction, so tests can substitute values
// without touching process-wide state.
type Config struct {
	VendusBaseURL  string
	VendusAPIKey   string
	InternalAPIKey string
	CORSOrigin     string
	Port           string

	// OrderValidation selects the order line-check policy: "strict" rejects
	// the whole order on an unknown product or insufficient stock, "lenient"
	// logs a warning and submits anyway.
	OrderValidation string
}

func Load() *Config {
	return &Config{
		VendusBaseURL:   os.Getenv("VENDUS_BASE_URL"),
		VendusAPIKey:    os.Getenv("VENDUS_API_KEY"),
		InternalAPIKey:  os.Getenv("INTERNAL_API_KEY"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),
		Port:            getEnv("PORT", "5000"),
		OrderValidation: getEnv("ORDER_VALIDATION", "strict"),
	}
}

// Strict reports whether the strict order validation policy is active.
// Anything other than an explicit "lenient" stays strict.
func (c *Config) Strict() bool {
	return c.OrderValidation != "lenient"
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
