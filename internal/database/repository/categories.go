package repository

import (
	"context"
	"database/sql"

	"github.com/jask/fincontrol/internal/domain"
)

// CategoryRepo handles categories.
type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Upsert(ctx context.Context, userID string, c domain.Category) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO categories(user_id, id, name, color, is_default)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(user_id, id) DO UPDATE SET
	 name=excluded.name,
	 color=excluded.color,
	 is_default=excluded.is_default;
	`, userID, c.ID, c.Name, c.Color, c.IsDefault)
	return err
}

func (r *CategoryRepo) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE user_id = ? AND id = ?`, userID, id)
	return err
}

// List returns defaults first, then custom categories by name.
func (r *CategoryRepo) List(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, color, is_default FROM categories
	WHERE user_id = ?
	ORDER BY is_default DESC, CASE WHEN is_default = 1 THEN CAST(SUBSTR(id, 5) AS INTEGER) END, name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.IsDefault); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
