package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-budget/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used by the postgres
	// ledger. Environment variables prefixed with PSQL_ will populate this
	// struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Ledger selects the ledger backend.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`

	// Platform configures the Graph API client.
	Platform configs.Platform `envPrefix:"PLATFORM_"`

	// Accounts lists the ad accounts to evaluate.
	Accounts configs.Accounts `envPrefix:"ACCOUNTS_"`

	// Notify configures where run reports are delivered.
	Notify configs.Notifier `envPrefix:"NOTIFY_"`

	// Alloc holds the default run thresholds.
	Alloc configs.Allocation `envPrefix:"ALLOC_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
