package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jask/fincontrol/internal/domain"
)

// TransactionRepo handles transactions.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const transactionColumns = `id, description, amount, type, date, category_id, card_id, goal_id,
 installment_id, recurring_expense_id, is_recurring`

func (r *TransactionRepo) Upsert(ctx context.Context, userID string, t domain.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(
	 id, user_id, description, amount, type, date, category_id, card_id, goal_id,
	 installment_id, recurring_expense_id, is_recurring, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 description=excluded.description,
	 amount=excluded.amount,
	 type=excluded.type,
	 date=excluded.date,
	 category_id=excluded.category_id,
	 card_id=excluded.card_id,
	 goal_id=excluded.goal_id,
	 installment_id=excluded.installment_id,
	 recurring_expense_id=excluded.recurring_expense_id,
	 is_recurring=excluded.is_recurring
	WHERE transactions.user_id = excluded.user_id;
	`,
		t.ID, userID, t.Description, t.Amount, string(t.Type), dateArg(t.Date), t.CategoryID, t.CardID, t.GoalID,
		t.InstallmentID, t.RecurringExpenseID, t.IsRecurring)
	return err
}

func (r *TransactionRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

// Get returns one transaction or domain.ErrNotFound.
func (r *TransactionRepo) Get(ctx context.Context, userID, id string) (domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? AND id = ?`, userID, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Transaction{}, domain.ErrNotFound
	}
	return t, err
}

// List returns the user's transactions matching f, newest first.
func (r *TransactionRepo) List(ctx context.Context, userID string, f domain.TransactionFilter) ([]domain.Transaction, error) {
	where := []string{"user_id = ?"}
	args := []interface{}{userID}

	if f.Month != "" {
		where = append(where, "substr(date, 1, 7) = ?")
		args = append(args, f.Month)
	}
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(f.Type))
	}
	if f.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.CardID != "" {
		where = append(where, "card_id = ?")
		args = append(args, f.CardID)
	}
	if f.InstallmentID != "" {
		where = append(where, "installment_id = ?")
		args = append(args, f.InstallmentID)
	}
	if f.Search != "" {
		where = append(where, "description LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}

	query := "SELECT " + transactionColumns + " FROM transactions WHERE " + strings.Join(where, " AND ") +
		" ORDER BY date DESC, created_at DESC, rowid DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTransaction(s scanner) (domain.Transaction, error) {
	var (
		t    domain.Transaction
		typ  string
		date string
	)
	if err := s.Scan(&t.ID, &t.Description, &t.Amount, &typ, &date, &t.CategoryID, &t.CardID, &t.GoalID,
		&t.InstallmentID, &t.RecurringExpenseID, &t.IsRecurring); err != nil {
		return t, err
	}
	d, err := parseDate("date", date)
	if err != nil {
		return t, err
	}
	t.Date = d
	t.Type = domain.TransactionType(typ)
	return t, nil
}
