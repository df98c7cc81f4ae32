package migrations

import "embed"

// FS embeds the PostgreSQL schema of the ledger and the run history. The
// golang-migrate library reads these files through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
