package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	// sqlite serializes writers; one pooled connection avoids SQLITE_BUSY
	// under concurrent bill submissions.
	db.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalogue. The UNIQUE(name) constraint is the durable guarantee behind
-- reconciliation: concurrent first-sight inserts of one name cannot both land.
CREATE TABLE IF NOT EXISTS vegetables(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  is_available INTEGER NOT NULL DEFAULT 1,
  has_fixed_price INTEGER NOT NULL DEFAULT 0,
  fixed_price NUMERIC,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS providers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  mobile TEXT NOT NULL,
  address TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS signers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bills(
  id TEXT PRIMARY KEY,
  provider_id TEXT NOT NULL REFERENCES providers(id),
  provider_name TEXT NOT NULL,
  signer TEXT,
  total NUMERIC NOT NULL,
  bill_date TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bills_date          ON bills(bill_date);
CREATE INDEX IF NOT EXISTS idx_bills_provider_name ON bills(provider_name);

-- seq preserves submission order; duplicate names within one bill are
-- distinct rows by design.
CREATE TABLE IF NOT EXISTS bill_items(
  bill_id TEXT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
  seq INTEGER NOT NULL,
  vegetable_id TEXT NOT NULL REFERENCES vegetables(id),
  name TEXT NOT NULL,
  quantity NUMERIC NOT NULL,
  price NUMERIC NOT NULL,
  item_total NUMERIC NOT NULL,
  PRIMARY KEY(bill_id, seq)
);
`
	_, err := db.Exec(schema)
	return err
}

// IsUniqueViolation reports whether err came from a UNIQUE constraint.
// modernc.org/sqlite exposes no typed error for this, so match the message.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
