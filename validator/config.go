package validator

// Config is a configuration for the validator application
type Config struct {
	HTTPAddr string
	// ExpiryTZ is an IANA timezone name used when computing the instant
	// a valid date stops being usable (e.g., "Australia/Sydney").
	ExpiryTZ string
	// MaxYearsInFuture bounds how far ahead an expiration year may lie.
	// Zero selects the library default of 19.
	MaxYearsInFuture int
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
	}
}
