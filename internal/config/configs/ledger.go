package configs

// Ledger selects the ledger backend: "postgres" (default) uses the Psql
// section, "sqlite" keeps the ledger in a local file.
type Ledger struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"mesa-budget.db"`
}
