package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// dateArg renders a calendar date column value.
func dateArg(t time.Time) string { return domain.FormatDate(t) }

func parseDate(col, s string) (time.Time, error) {
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %s: %w", col, err)
	}
	return t, nil
}

func optionalDateArg(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return dateArg(*t)
}

func parseOptionalDate(col string, s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseDate(col, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalDecimalArg(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

func optionalDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
