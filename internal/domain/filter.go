package domain

import "strings"

// TransactionFilter narrows a transaction list. Zero fields match everything.
type TransactionFilter struct {
	Month         string // "YYYY-MM"
	Type          TransactionType
	CategoryID    string
	CardID        string
	InstallmentID string
	Search        string // case-insensitive substring of the description
}

// Match reports whether t passes every set field.
func (f TransactionFilter) Match(t Transaction) bool {
	if f.Month != "" && !InMonth(t.Date, f.Month) {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	if f.CardID != "" && !SameRef(t.CardID, f.CardID) {
		return false
	}
	if f.InstallmentID != "" && !SameRef(t.InstallmentID, f.InstallmentID) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply returns the matching transactions, keeping their order.
func (f TransactionFilter) Apply(txs []Transaction) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
