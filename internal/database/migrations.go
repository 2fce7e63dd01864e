package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1Events,
}

// migrationV1Events creates the events table. One table covers all four
// kinds; the kind column says which of the date / lunar-triple columns
// carry the trigger.
const migrationV1Events = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL CHECK (kind IN ('gregorian', 'bikram_recurring', 'bikram_fixed', 'lunar')),

	name TEXT NOT NULL,
	name_en TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	detail_en TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	holiday INTEGER NOT NULL DEFAULT 0,

	lunar_month TEXT NOT NULL DEFAULT '',
	paksha TEXT NOT NULL DEFAULT '',
	tithi TEXT NOT NULL DEFAULT '',

	start_year INTEGER NOT NULL DEFAULT 0,
	end_year INTEGER NOT NULL DEFAULT 0,

	created_at TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at TEXT NOT NULL DEFAULT (datetime('now')),

	UNIQUE (kind, name, date, lunar_month, paksha, tithi)
);

CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(kind, date);
`
