package repository

import (
	"context"
	"database/sql"

	"github.com/jask/fincontrol/internal/domain"
)

// RecurringRepo handles recurring expenses.
type RecurringRepo struct{ db *sql.DB }

func NewRecurringRepo(db *sql.DB) *RecurringRepo { return &RecurringRepo{db: db} }

func (r *RecurringRepo) Upsert(ctx context.Context, userID string, e domain.RecurringExpense) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO recurring_expenses(id, user_id, name, amount, category_id, due_day, active, last_generated_month)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 amount=excluded.amount,
	 category_id=excluded.category_id,
	 due_day=excluded.due_day,
	 active=excluded.active,
	 last_generated_month=excluded.last_generated_month
	WHERE recurring_expenses.user_id = excluded.user_id;
	`, e.ID, userID, e.Name, e.Amount, e.CategoryID, e.DueDay, e.Active, e.LastGeneratedMonth)
	return err
}

func (r *RecurringRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM recurring_expenses WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (r *RecurringRepo) List(ctx context.Context, userID string) ([]domain.RecurringExpense, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, amount, category_id, due_day, active, last_generated_month
	FROM recurring_expenses WHERE user_id = ? ORDER BY due_day, name, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.RecurringExpense
	for rows.Next() {
		var e domain.RecurringExpense
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.CategoryID, &e.DueDay, &e.Active, &e.LastGeneratedMonth); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
