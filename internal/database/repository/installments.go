package repository

import (
	"context"
	"database/sql"

	"github.com/jask/fincontrol/internal/domain"
)

// InstallmentRepo handles installment purchases. The paid count is not a
// column; it is derived from transactions.installment_id.
type InstallmentRepo struct{ db *sql.DB }

func NewInstallmentRepo(db *sql.DB) *InstallmentRepo { return &InstallmentRepo{db: db} }

func (r *InstallmentRepo) Upsert(ctx context.Context, userID string, i domain.InstallmentPurchase) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO installment_purchases(
	 id, user_id, description, category_id, card_id, total_installments, installment_amount,
	 total_amount, purchase_date, due_day, status, last_generated_month, notes)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 description=excluded.description,
	 category_id=excluded.category_id,
	 card_id=excluded.card_id,
	 total_installments=excluded.total_installments,
	 installment_amount=excluded.installment_amount,
	 total_amount=excluded.total_amount,
	 purchase_date=excluded.purchase_date,
	 due_day=excluded.due_day,
	 status=excluded.status,
	 last_generated_month=excluded.last_generated_month,
	 notes=excluded.notes
	WHERE installment_purchases.user_id = excluded.user_id;
	`,
		i.ID, userID, i.Description, i.CategoryID, i.CardID, i.TotalInstallments, i.InstallmentAmount,
		i.TotalAmount, dateArg(i.PurchaseDate), i.DueDay, string(i.Status), i.LastGeneratedMonth, i.Notes)
	return err
}

// Delete removes the purchase; sqlite clears installment_id on its
// transactions.
func (r *InstallmentRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM installment_purchases WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

func (r *InstallmentRepo) List(ctx context.Context, userID string) ([]domain.InstallmentPurchase, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, description, category_id, card_id, total_installments, installment_amount,
	 total_amount, purchase_date, due_day, status, last_generated_month, notes
	FROM installment_purchases WHERE user_id = ? ORDER BY purchase_date DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.InstallmentPurchase
	for rows.Next() {
		i, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func scanInstallment(s scanner) (domain.InstallmentPurchase, error) {
	var (
		i        domain.InstallmentPurchase
		purchase string
		status   string
	)
	if err := s.Scan(&i.ID, &i.Description, &i.CategoryID, &i.CardID, &i.TotalInstallments, &i.InstallmentAmount,
		&i.TotalAmount, &purchase, &i.DueDay, &status, &i.LastGeneratedMonth, &i.Notes); err != nil {
		return i, err
	}
	d, err := parseDate("purchase_date", purchase)
	if err != nil {
		return i, err
	}
	i.PurchaseDate = d
	i.Status = domain.InstallmentStatus(status)
	return i, nil
}
