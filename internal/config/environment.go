package config

// Recognized runtime environment labels. The environment selects log
// verbosity and is surfaced to the logger at startup.
const (
	EnvironmentLocal = "local"
	EnvironmentProd  = "prod"
)
