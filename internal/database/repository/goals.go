package repository

import (
	"context"
	"database/sql"

	"github.com/jask/fincontrol/internal/domain"
)

// GoalRepo handles savings goals.
type GoalRepo struct{ db *sql.DB }

func NewGoalRepo(db *sql.DB) *GoalRepo { return &GoalRepo{db: db} }

func (r *GoalRepo) Upsert(ctx context.Context, userID string, g domain.FinancialGoal) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO goals(id, user_id, name, target_amount, current_amount, deadline, status)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 target_amount=excluded.target_amount,
	 current_amount=excluded.current_amount,
	 deadline=excluded.deadline,
	 status=excluded.status
	WHERE goals.user_id = excluded.user_id;
	`, g.ID, userID, g.Name, g.TargetAmount, g.CurrentAmount, optionalDateArg(g.Deadline), string(g.Status))
	return err
}

func (r *GoalRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (r *GoalRepo) List(ctx context.Context, userID string) ([]domain.FinancialGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, target_amount, current_amount, deadline, status
	FROM goals WHERE user_id = ? ORDER BY name, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.FinancialGoal
	for rows.Next() {
		var (
			g        domain.FinancialGoal
			deadline sql.NullString
			status   string
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &deadline, &status); err != nil {
			return nil, err
		}
		if g.Deadline, err = parseOptionalDate("deadline", deadline); err != nil {
			return nil, err
		}
		g.Status = domain.GoalStatus(status)
		out = append(out, g)
	}
	return out, rows.Err()
}
