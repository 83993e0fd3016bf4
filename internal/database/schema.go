package database

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
)

// Both payee kinds share one table; payments cascade with their payee.
const schema = `
	CREATE TABLE IF NOT EXISTS payees (
		id BIGSERIAL PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('worker', 'vendor')),
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		total_paid NUMERIC(14, 2) NOT NULL DEFAULT 0,
		last_payment_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_payees_kind ON payees(kind);

	CREATE TABLE IF NOT EXISTS payments (
		id BIGSERIAL PRIMARY KEY,
		payee_id BIGINT NOT NULL REFERENCES payees(id) ON DELETE CASCADE,
		amount NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
		payment_date DATE NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_payments_payee_date ON payments(payee_id, payment_date DESC, id DESC);
`

// EnsureSchema creates the tables at startup if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "unable to initialize schema")
	}
	return nil
}
