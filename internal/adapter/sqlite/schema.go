package sqlite

const ledgerSchemaSQL = `
CREATE TABLE IF NOT EXISTS ledger_rows (
	ref                INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id             TEXT NOT NULL,
	level              TEXT NOT NULL,
	account_id         TEXT NOT NULL,
	unit_id            TEXT NOT NULL,
	parent_campaign_id TEXT NOT NULL DEFAULT '',
	kind               TEXT NOT NULL,
	display_name       TEXT NOT NULL,
	current_budget     TEXT NOT NULL,
	spend              TEXT NOT NULL,
	conversion_value   TEXT NOT NULL,
	roas               TEXT NOT NULL,
	profit             TEXT NOT NULL,
	tier               TEXT NOT NULL DEFAULT '',
	details            TEXT NOT NULL DEFAULT 'N/A',
	new_budget         TEXT,
	created_at         TEXT NOT NULL
);
`

const historySchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	policy          TEXT NOT NULL,
	state           TEXT NOT NULL,
	dry_run         INTEGER NOT NULL DEFAULT 0,
	started_at      TEXT NOT NULL,
	finished_at     TEXT NOT NULL,
	units_evaluated INTEGER NOT NULL DEFAULT 0,
	changes_applied INTEGER NOT NULL DEFAULT 0,
	changes_failed  INTEGER NOT NULL DEFAULT 0,
	amount_moved    TEXT NOT NULL DEFAULT '0',
	total_budget    TEXT NOT NULL DEFAULT '0',
	summary         TEXT NOT NULL DEFAULT '',
	error           TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
