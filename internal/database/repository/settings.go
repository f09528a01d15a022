package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jask/fincontrol/internal/domain"
)

// SettingsRepo handles the per-user settings row.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Upsert(ctx context.Context, userID string, s domain.Settings) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO user_settings(user_id, balance_offset, dark_mode, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(user_id) DO UPDATE SET
	 balance_offset=excluded.balance_offset,
	 dark_mode=excluded.dark_mode,
	 updated_at=CURRENT_TIMESTAMP;
	`, userID, s.BalanceOffset, s.DarkMode)
	return err
}

// Get returns the stored settings or domain.ErrNotFound.
func (r *SettingsRepo) Get(ctx context.Context, userID string) (domain.Settings, error) {
	var s domain.Settings
	err := r.db.QueryRowContext(ctx,
		`SELECT balance_offset, dark_mode FROM user_settings WHERE user_id = ?`, userID).
		Scan(&s.BalanceOffset, &s.DarkMode)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Settings{}, domain.ErrNotFound
	}
	return s, err
}
