package repository

import (
	"context"
	"database/sql"

	"github.com/jask/fincontrol/internal/domain"
)

// InvestmentRepo handles investments.
type InvestmentRepo struct{ db *sql.DB }

func NewInvestmentRepo(db *sql.DB) *InvestmentRepo { return &InvestmentRepo{db: db} }

func (r *InvestmentRepo) Upsert(ctx context.Context, userID string, i domain.Investment) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO investments(id, user_id, name, type, initial_amount, current_amount, start_date, category_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 type=excluded.type,
	 initial_amount=excluded.initial_amount,
	 current_amount=excluded.current_amount,
	 start_date=excluded.start_date,
	 category_id=excluded.category_id
	WHERE investments.user_id = excluded.user_id;
	`, i.ID, userID, i.Name, i.Type, i.InitialAmount, i.CurrentAmount, dateArg(i.StartDate), i.CategoryID)
	return err
}

func (r *InvestmentRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM investments WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (r *InvestmentRepo) List(ctx context.Context, userID string) ([]domain.Investment, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, type, initial_amount, current_amount, start_date, category_id
	FROM investments WHERE user_id = ? ORDER BY start_date, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Investment
	for rows.Next() {
		var (
			i     domain.Investment
			start string
		)
		if err := rows.Scan(&i.ID, &i.Name, &i.Type, &i.InitialAmount, &i.CurrentAmount, &start, &i.CategoryID); err != nil {
			return nil, err
		}
		if i.StartDate, err = parseDate("start_date", start); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}
