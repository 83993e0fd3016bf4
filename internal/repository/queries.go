package repository

const payeeColumns = `id, kind, name, role, contact, total_paid, last_payment_date, created_at, updated_at`

const (
	queryCreatePayee = `
		INSERT INTO payees (kind, name, role, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + payeeColumns

	queryGetPayee = `
		SELECT ` + payeeColumns + `
		FROM payees
		WHERE id = $1 AND kind = $2`

	queryListPayees = `
		SELECT ` + payeeColumns + `
		FROM payees
		WHERE kind = $1
		ORDER BY name ASC, id ASC`

	// total_paid and last_payment_date are written only by payments.
	queryUpdatePayee = `
		UPDATE payees
		SET name = $1, role = $2, contact = $3, updated_at = $4
		WHERE id = $5 AND kind = $6
		RETURNING ` + payeeColumns

	queryDeletePayee = `
		DELETE FROM payees WHERE id = $1 AND kind = $2`
)
