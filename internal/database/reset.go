package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Reset wipes all rows owned by userID. The schema stays intact so the app
// can continue running; call SeedDefaults afterwards to restore categories.
func Reset(ctx context.Context, db *sql.DB, userID string) error {
	if db == nil {
		return fmt.Errorf("reset: db not configured")
	}
	// children before parents
	tables := []string{
		"transactions",
		"installment_purchases",
		"recurring_expenses",
		"goals",
		"cards",
		"investments",
		"categories",
		"user_settings",
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t+" WHERE user_id = ?", userID); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	})
}
