package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

// CardRepo handles credit cards.
type CardRepo struct{ db *sql.DB }

func NewCardRepo(db *sql.DB) *CardRepo { return &CardRepo{db: db} }

func (r *CardRepo) Upsert(ctx context.Context, userID string, c domain.CreditCard) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO cards(id, user_id, name, credit_limit, closing_day, due_day, manual_invoice_value)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 credit_limit=excluded.credit_limit,
	 closing_day=excluded.closing_day,
	 due_day=excluded.due_day,
	 manual_invoice_value=excluded.manual_invoice_value
	WHERE cards.user_id = excluded.user_id;
	`, c.ID, userID, c.Name, c.Limit, c.ClosingDay, c.DueDay, optionalDecimalArg(c.ManualInvoiceValue))
	return err
}

// Delete removes the card; sqlite clears card_id on dependent rows.
func (r *CardRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (r *CardRepo) List(ctx context.Context, userID string) ([]domain.CreditCard, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, credit_limit, closing_day, due_day, manual_invoice_value
	FROM cards WHERE user_id = ? ORDER BY name, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.CreditCard
	for rows.Next() {
		var (
			c      domain.CreditCard
			manual decimal.NullDecimal
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Limit, &c.ClosingDay, &c.DueDay, &manual); err != nil {
			return nil, err
		}
		c.ManualInvoiceValue = optionalDecimal(manual)
		out = append(out, c)
	}
	return out, rows.Err()
}
