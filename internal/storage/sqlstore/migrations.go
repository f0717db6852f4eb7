package sqlstore

import "github.com/jmoiron/sqlx"

// Schemas run on startup to ensure tables exist. Profiles and trips come
// first because everything else references them.
// Amounts are TEXT in SQLite and NUMERIC in PostgreSQL; decimal.Decimal
// converts in both directions.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS profiles (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL DEFAULT '',
    display_name TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trips (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    currency TEXT NOT NULL DEFAULT 'USD',
    leader_id TEXT NOT NULL REFERENCES profiles(id),
    invite_code TEXT NOT NULL UNIQUE,
    starts_at TEXT NOT NULL DEFAULT '',
    ends_at TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trip_members (
    trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES profiles(id),
    role TEXT NOT NULL CHECK (role IN ('leader', 'member')),
    status TEXT NOT NULL CHECK (status IN ('invited', 'pending', 'accepted', 'declined')),
    invited_by TEXT REFERENCES profiles(id),
    joined_at INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (trip_id, user_id)
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    created_by TEXT NOT NULL REFERENCES profiles(id),
    payer_id TEXT NOT NULL REFERENCES profiles(id),
    amount TEXT NOT NULL,
    currency TEXT NOT NULL,
    description TEXT NOT NULL,
    date TEXT NOT NULL,
    receipt_url TEXT NOT NULL DEFAULT '',
    split_type TEXT NOT NULL CHECK (split_type IN ('equal_all', 'equal_selected', 'custom')),
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expense_splits (
    expense_id TEXT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES profiles(id),
    share_amount TEXT NOT NULL,
    PRIMARY KEY (expense_id, user_id)
);

CREATE TABLE IF NOT EXISTS settlements (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    from_user_id TEXT NOT NULL REFERENCES profiles(id),
    to_user_id TEXT NOT NULL REFERENCES profiles(id),
    amount TEXT NOT NULL,
    date TEXT NOT NULL,
    method TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'completed',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trip_members_user_id ON trip_members(user_id);
CREATE INDEX IF NOT EXISTS idx_expenses_trip_id ON expenses(trip_id);
CREATE INDEX IF NOT EXISTS idx_expense_splits_expense_id ON expense_splits(expense_id);
CREATE INDEX IF NOT EXISTS idx_settlements_trip_id ON settlements(trip_id);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS profiles (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    username TEXT NOT NULL DEFAULT '',
    display_name TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS trips (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    currency VARCHAR(3) NOT NULL DEFAULT 'USD',
    leader_id TEXT NOT NULL REFERENCES profiles(id),
    invite_code TEXT NOT NULL UNIQUE,
    starts_at TEXT NOT NULL DEFAULT '',
    ends_at TEXT NOT NULL DEFAULT '',
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS trip_members (
    trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES profiles(id),
    role TEXT NOT NULL CHECK (role IN ('leader', 'member')),
    status TEXT NOT NULL CHECK (status IN ('invited', 'pending', 'accepted', 'declined')),
    invited_by TEXT REFERENCES profiles(id),
    joined_at BIGINT NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL,
    PRIMARY KEY (trip_id, user_id)
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    created_by TEXT NOT NULL REFERENCES profiles(id),
    payer_id TEXT NOT NULL REFERENCES profiles(id),
    amount NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
    currency VARCHAR(3) NOT NULL,
    description TEXT NOT NULL,
    date TEXT NOT NULL,
    receipt_url TEXT NOT NULL DEFAULT '',
    split_type TEXT NOT NULL CHECK (split_type IN ('equal_all', 'equal_selected', 'custom')),
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS expense_splits (
    expense_id TEXT NOT NULL REFERENCES expenses(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES profiles(id),
    share_amount NUMERIC(14, 2) NOT NULL,
    PRIMARY KEY (expense_id, user_id)
);

CREATE TABLE IF NOT EXISTS settlements (
    id TEXT PRIMARY KEY,
    trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
    from_user_id TEXT NOT NULL REFERENCES profiles(id),
    to_user_id TEXT NOT NULL REFERENCES profiles(id),
    amount NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
    date TEXT NOT NULL,
    method TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'completed',
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trip_members_user_id ON trip_members(user_id);
CREATE INDEX IF NOT EXISTS idx_expenses_trip_id ON expenses(trip_id);
CREATE INDEX IF NOT EXISTS idx_expense_splits_expense_id ON expense_splits(expense_id);
CREATE INDEX IF NOT EXISTS idx_settlements_trip_id ON settlements(trip_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sqlx.DB, schema string) error {
	_, err := db.Exec(schema)
	return err
}
