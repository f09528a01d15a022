package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fincontrol/internal/domain"
)

// SeedDefaults ensures a user has the built-in categories and a settings
// row. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, userID string) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_settings(user_id, balance_offset, dark_mode) VALUES (?, '0', 0)`,
			userID); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE user_id = ?`, userID).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, c := range domain.DefaultCategories {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories(user_id, id, name, color, is_default) VALUES (?, ?, ?, ?, 1)`,
				userID, c.ID, c.Name, c.Color); err != nil {
				return fmt.Errorf("seed category %s: %w", c.ID, err)
			}
		}
		return nil
	})
}
