package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/lib/pq"
	"github.com/sitetrack/backend/internal/database"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
)

// Compile-time check: *PostgresStore must satisfy Store.
var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps payments in the payments table and the aggregate on
// the payees row.
type PostgresStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *PostgresStore) WithTx(ctx context.Context, fn func(ctx context.Context, w Writer) error) error {
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		return fn(ctx, &txWriter{tx: tx, now: s.now})
	})
	if err != nil {
		return classify(err, "payment transaction")
	}
	return nil
}

// ListByPayee returns a payee's entries, newest payment date first and the
// most recently inserted first within a date.
func (s *PostgresStore) ListByPayee(ctx context.Context, payeeID int64) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, queryListPayments, payeeID)
	if err != nil {
		return nil, classify(err, "listing payments")
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, classify(err, "scanning payment")
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterating payments")
	}
	return payments, nil
}

// Reconcile reads the stored aggregate of a payee and recomputes it from the
// ledger within one read-only snapshot, so payments committing meanwhile
// cannot make a consistent payee look drifted. It never repairs anything.
func (s *PostgresStore) Reconcile(ctx context.Context, kind models.PayeeKind, payeeID int64) (*models.Reconciliation, error) {
	result := &models.Reconciliation{PayeeID: payeeID, Kind: kind}

	err := database.WithTxOptions(ctx, s.db, database.ReadSnapshot, func(tx *sql.Tx) error {
		var storedLast sql.NullTime
		err := tx.QueryRowContext(ctx, queryPayeeAggregate, payeeID, string(kind)).
			Scan(&result.StoredTotal, &storedLast)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(kind, payeeID)
		}
		if err != nil {
			return classify(err, "reading payee aggregate")
		}
		result.StoredLastPaymentDate = dateOf(storedLast)

		if err := tx.QueryRowContext(ctx, queryLedgerSummary, payeeID).
			Scan(&result.EntryCount, &result.LedgerTotal); err != nil {
			return classify(err, "summarizing payments")
		}
		if result.EntryCount == 0 {
			return nil
		}

		var last sql.NullTime
		if err := tx.QueryRowContext(ctx, queryLastInsertedDate, payeeID).Scan(&last); err != nil {
			return classify(err, "reading last payment date")
		}
		result.LedgerLastPaymentDate = dateOf(last)
		return nil
	})
	if err != nil {
		return nil, classify(err, "reconciling payee")
	}

	result.Check()
	return result, nil
}

// DeleteAllForPayee removes every entry of a payee within the caller's
// transaction. It is only used while deleting the payee itself.
func DeleteAllForPayee(ctx context.Context, tx *sql.Tx, payeeID int64) error {
	if _, err := tx.ExecContext(ctx, queryDeletePayments, payeeID); err != nil {
		return classify(err, "deleting payments")
	}
	return nil
}

type txWriter struct {
	tx  *sql.Tx
	now func() time.Time
}

func (w *txWriter) appendPayment(ctx context.Context, req PaymentRequest) (*models.Payment, error) {
	description := sql.NullString{String: req.Description, Valid: req.Description != ""}

	row := w.tx.QueryRowContext(ctx, queryInsertPayment,
		req.PayeeID, req.Amount, req.Date.String(), description, w.now())
	payment, err := scanPayment(row)
	if err != nil {
		return nil, classify(err, fmt.Sprintf("appending payment for %s %d", req.Kind, req.PayeeID))
	}
	return payment, nil
}

func (w *txWriter) applyPayment(ctx context.Context, req PaymentRequest) error {
	result, err := w.tx.ExecContext(ctx, queryApplyPayment,
		req.Amount, req.Date.String(), w.now(), req.PayeeID, string(req.Kind))
	if err != nil {
		return classify(err, fmt.Sprintf("applying payment to %s %d", req.Kind, req.PayeeID))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return classify(err, "checking rows affected")
	}
	if rowsAffected == 0 {
		return notFound(req.Kind, req.PayeeID)
	}
	return nil
}

func dateOf(t sql.NullTime) *civil.Date {
	if !t.Valid {
		return nil
	}
	date := civil.DateOf(t.Time)
	return &date
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPayment(row scanner) (*models.Payment, error) {
	var (
		p           models.Payment
		paymentDate time.Time
		description sql.NullString
	)
	if err := row.Scan(&p.ID, &p.PayeeID, &p.Amount, &paymentDate, &description, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.PaymentDate = civil.DateOf(paymentDate)
	p.Description = description.String
	return &p, nil
}

func notFound(kind models.PayeeKind, payeeID int64) error {
	return ierr.NewErrorf("%s %d does not exist", kind, payeeID).
		WithHintf("%s not found", kind.Title()).
		Mark(ierr.ErrNotFound)
}

// classify marks driver errors with the taxonomy, leaving already classified
// errors untouched.
func classify(err error, op string) error {
	if ierr.IsNotFound(err) || ierr.IsInvalidArgument(err) || ierr.IsStorageFault(err) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "foreign_key_violation":
			return ierr.WithError(err).
				WithMessage(op).
				WithHint("Payee not found").
				Mark(ierr.ErrNotFound)
		case "numeric_value_out_of_range":
			// also raised when total_paid would overflow
			return ierr.WithError(err).
				WithMessage(op).
				WithHint("Amount exceeds the supported range").
				Mark(ierr.ErrInvalidArgument)
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.WithError(err).
			WithMessage(op).
			WithHint("Payee not found").
			Mark(ierr.ErrNotFound)
	}

	return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrStorageFault)
}
