package ledger

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/fincontrol/internal/domain"
)

// AddCategory stores a new category. A name close to an existing one is
// still accepted but logged, since it usually is a typo'd duplicate.
func (l *Ledger) AddCategory(ctx context.Context, c domain.Category) domain.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	c.ID = l.newID()
	if c.Color == "" {
		c.Color = domain.DefaultCategoryColor
	}
	if similar, ok := similarCategory(l.state.Categories, c.Name); ok {
		l.log.Warn().Str("name", c.Name).Str("similar_to", similar.Name).Msg("category name resembles an existing one")
	}
	l.state.Categories = append(l.state.Categories, c)
	l.persist("save category", c.ID, l.store.SaveCategory(ctx, l.userID, c))
	return c
}

func (l *Ledger) UpdateCategory(ctx context.Context, c domain.Category) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Categories {
		if l.state.Categories[i].ID == c.ID {
			l.state.Categories[i] = c
			l.persist("save category", c.ID, l.store.SaveCategory(ctx, l.userID, c))
			return true
		}
	}
	return false
}

// DeleteCategory removes a category unless a transaction or recurring
// expense still references it. A refused delete is logged and reported as
// false; nothing is written.
func (l *Ledger) DeleteCategory(ctx context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.categoryInUse(id) {
		l.log.Warn().Str("category_id", id).Msg("cannot delete category in use")
		return false
	}
	for i, c := range l.state.Categories {
		if c.ID == id {
			l.state.Categories = append(l.state.Categories[:i:i], l.state.Categories[i+1:]...)
			l.persist("delete category", id, l.store.DeleteCategory(ctx, l.userID, id))
			return true
		}
	}
	return false
}

func (l *Ledger) categoryInUse(id string) bool {
	for _, t := range l.state.Transactions {
		if t.CategoryID == id {
			return true
		}
	}
	for _, r := range l.state.RecurringExpenses {
		if r.CategoryID == id {
			return true
		}
	}
	return false
}

func similarCategory(cats []domain.Category, name string) (domain.Category, bool) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	if norm == "" {
		return domain.Category{}, false
	}
	for _, c := range cats {
		other := strings.ToUpper(strings.TrimSpace(c.Name))
		maxlen := utf8.RuneCountInString(norm)
		if n := utf8.RuneCountInString(other); n > maxlen {
			maxlen = n
		}
		dist := levenshtein.ComputeDistance(norm, other)
		if float64(dist)/float64(maxlen) < 0.25 {
			return c, true
		}
	}
	return domain.Category{}, false
}
