package audit

import (
	"time"

	"github.com/google/uuid"
	ierr "github.com/sitetrack/backend/internal/errors"
	"github.com/sitetrack/backend/internal/models"
	"go.uber.org/zap"
)

const (
	EventPaymentRecorded = "PAYMENT_RECORDED"
	EventPaymentFailed   = "PAYMENT_FAILED"
	EventPayeeDeleted    = "PAYEE_DELETED"
)

type Event struct {
	ID        string
	Timestamp time.Time
	EventType string
	PayeeKind models.PayeeKind
	PayeeID   int64
	PaymentID int64
	Amount    string
	Status    string
	Details   map[string]string
}

// Logger writes one structured line per financial event
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (a *Logger) LogPayment(kind models.PayeeKind, payment *models.Payment) {
	a.write(Event{
		EventType: EventPaymentRecorded,
		PayeeKind: kind,
		PayeeID:   payment.PayeeID,
		PaymentID: payment.ID,
		Amount:    payment.Amount.StringFixed(2),
		Status:    "SUCCESS",
		Details: map[string]string{
			"payment_date": payment.PaymentDate.String(),
		},
	})
}

func (a *Logger) LogError(kind models.PayeeKind, payeeID int64, amount string, err error) {
	a.write(Event{
		EventType: EventPaymentFailed,
		PayeeKind: kind,
		PayeeID:   payeeID,
		Amount:    amount,
		Status:    "FAILED",
		Details: map[string]string{
			"code":  ierr.Code(err),
			"error": err.Error(),
		},
	})
}

func (a *Logger) LogOperation(kind models.PayeeKind, payeeID int64, operation, details string) {
	a.write(Event{
		EventType: operation,
		PayeeKind: kind,
		PayeeID:   payeeID,
		Status:    "SUCCESS",
		Details:   map[string]string{"details": details},
	})
}

func (a *Logger) write(event Event) {
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()

	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.Time("event_time", event.Timestamp),
		zap.String("event_type", event.EventType),
		zap.String("payee_kind", event.PayeeKind.String()),
		zap.Int64("payee_id", event.PayeeID),
		zap.String("status", event.Status),
	}
	if event.PaymentID != 0 {
		fields = append(fields, zap.Int64("payment_id", event.PaymentID))
	}
	if event.Amount != "" {
		fields = append(fields, zap.String("amount", event.Amount))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	if event.Status == "FAILED" {
		a.log.Warn("AUDIT", fields...)
		return
	}
	a.log.Info("AUDIT", fields...)
}
