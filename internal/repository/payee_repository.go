package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/sitetrack/backend/internal/database"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/ledger"
	"github.com/sitetrack/backend/internal/models"
)

// PayeeFields are the user editable attributes of a payee
type PayeeFields struct {
	Name    string
	Role    string
	Contact string
}

// PayeeRepository owns the payee rows. It never writes total_paid or
// last_payment_date; those belong to the payment coordinator.
type PayeeRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPayeeRepository(db *sqlx.DB) *PayeeRepository {
	return &PayeeRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

type payeeRow struct {
	ID              int64           `db:"id"`
	Kind            string          `db:"kind"`
	Name            string          `db:"name"`
	Role            string          `db:"role"`
	Contact         string          `db:"contact"`
	TotalPaid       decimal.Decimal `db:"total_paid"`
	LastPaymentDate sql.NullTime    `db:"last_payment_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r payeeRow) toModel() models.Payee {
	p := models.Payee{
		ID:        r.ID,
		Kind:      models.PayeeKind(r.Kind),
		Name:      r.Name,
		Role:      r.Role,
		Contact:   r.Contact,
		TotalPaid: r.TotalPaid,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.LastPaymentDate.Valid {
		date := civil.DateOf(r.LastPaymentDate.Time)
		p.LastPaymentDate = &date
	}
	return p
}

func (r *PayeeRepository) Create(ctx context.Context, kind models.PayeeKind, fields PayeeFields) (*models.Payee, error) {
	var row payeeRow
	err := r.db.GetContext(ctx, &row, queryCreatePayee,
		string(kind), fields.Name, fields.Role, fields.Contact, r.now())
	if err != nil {
		return nil, storageFault(err, fmt.Sprintf("creating %s", kind))
	}
	payee := row.toModel()
	return &payee, nil
}

// Get returns the payee of the given kind, NotFound when there is none.
func (r *PayeeRepository) Get(ctx context.Context, kind models.PayeeKind, id int64) (*models.Payee, error) {
	var row payeeRow
	err := r.db.GetContext(ctx, &row, queryGetPayee, id, string(kind))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payeeNotFound(kind, id)
	}
	if err != nil {
		return nil, storageFault(err, fmt.Sprintf("getting %s %d", kind, id))
	}
	payee := row.toModel()
	return &payee, nil
}

func (r *PayeeRepository) List(ctx context.Context, kind models.PayeeKind) ([]models.Payee, error) {
	var rows []payeeRow
	if err := r.db.SelectContext(ctx, &rows, queryListPayees, string(kind)); err != nil {
		return nil, storageFault(err, fmt.Sprintf("listing %ss", kind))
	}
	return lo.Map(rows, func(row payeeRow, _ int) models.Payee {
		return row.toModel()
	}), nil
}

// Update rewrites the editable fields and leaves the aggregate untouched.
func (r *PayeeRepository) Update(ctx context.Context, kind models.PayeeKind, id int64, fields PayeeFields) (*models.Payee, error) {
	var row payeeRow
	err := r.db.GetContext(ctx, &row, queryUpdatePayee,
		fields.Name, fields.Role, fields.Contact, r.now(), id, string(kind))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payeeNotFound(kind, id)
	}
	if err != nil {
		return nil, storageFault(err, fmt.Sprintf("updating %s %d", kind, id))
	}
	payee := row.toModel()
	return &payee, nil
}

// Delete removes the payee and all of its ledger entries in one transaction.
func (r *PayeeRepository) Delete(ctx context.Context, kind models.PayeeKind, id int64) error {
	err := database.WithTx(ctx, r.db.DB, func(tx *sql.Tx) error {
		if err := ledger.DeleteAllForPayee(ctx, tx, id); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, queryDeletePayee, id, string(kind))
		if err != nil {
			return storageFault(err, fmt.Sprintf("deleting %s %d", kind, id))
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return storageFault(err, "checking rows affected")
		}
		if rowsAffected == 0 {
			return payeeNotFound(kind, id)
		}
		return nil
	})
	if err != nil && !ierr.IsNotFound(err) && !ierr.IsStorageFault(err) {
		return storageFault(err, fmt.Sprintf("deleting %s %d", kind, id))
	}
	return err
}

func payeeNotFound(kind models.PayeeKind, id int64) error {
	return ierr.NewErrorf("%s %d does not exist", kind, id).
		WithHintf("%s not found", kind.Title()).
		Mark(ierr.ErrNotFound)
}

func storageFault(err error, op string) error {
	return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrStorageFault)
}
