package ledger

const (
	queryInsertPayment = `
		INSERT INTO payments (payee_id, amount, payment_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, payee_id, amount, payment_date, description, created_at`

	// Single statement so concurrent payments never lose an update.
	queryApplyPayment = `
		UPDATE payees
		SET total_paid = COALESCE(total_paid, 0) + $1, last_payment_date = $2, updated_at = $3
		WHERE id = $4 AND kind = $5`

	queryListPayments = `
		SELECT id, payee_id, amount, payment_date, description, created_at
		FROM payments
		WHERE payee_id = $1
		ORDER BY payment_date DESC, id DESC`

	queryDeletePayments = `
		DELETE FROM payments WHERE payee_id = $1`

	queryPayeeAggregate = `
		SELECT total_paid, last_payment_date
		FROM payees
		WHERE id = $1 AND kind = $2`

	queryLedgerSummary = `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payee_id = $1`

	queryLastInsertedDate = `
		SELECT payment_date
		FROM payments
		WHERE payee_id = $1
		ORDER BY id DESC
		LIMIT 1`
)
