package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/ledger"
)

var _ ledger.Store = (*Store)(nil)

// Store is the sqlite-backed ledger store, one repo per table.
type Store struct {
	Settings     *SettingsRepo
	Categories   *CategoryRepo
	Cards        *CardRepo
	Transactions *TransactionRepo
	Recurring    *RecurringRepo
	Installments *InstallmentRepo
	Goals        *GoalRepo
	Investments  *InvestmentRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Settings:     NewSettingsRepo(db),
		Categories:   NewCategoryRepo(db),
		Cards:        NewCardRepo(db),
		Transactions: NewTransactionRepo(db),
		Recurring:    NewRecurringRepo(db),
		Installments: NewInstallmentRepo(db),
		Goals:        NewGoalRepo(db),
		Investments:  NewInvestmentRepo(db),
	}
}

// Load reads every row set owned by userID. A user without a settings row
// gets zero settings.
func (s *Store) Load(ctx context.Context, userID string) (domain.State, error) {
	var (
		st  domain.State
		err error
	)
	st.Settings, err = s.Settings.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		st.Settings = domain.Settings{BalanceOffset: decimal.Zero}
	} else if err != nil {
		return st, fmt.Errorf("settings: %w", err)
	}
	if st.Categories, err = s.Categories.List(ctx, userID); err != nil {
		return st, fmt.Errorf("categories: %w", err)
	}
	if st.Cards, err = s.Cards.List(ctx, userID); err != nil {
		return st, fmt.Errorf("cards: %w", err)
	}
	if st.Transactions, err = s.Transactions.List(ctx, userID, domain.TransactionFilter{}); err != nil {
		return st, fmt.Errorf("transactions: %w", err)
	}
	if st.RecurringExpenses, err = s.Recurring.List(ctx, userID); err != nil {
		return st, fmt.Errorf("recurring expenses: %w", err)
	}
	if st.Installments, err = s.Installments.List(ctx, userID); err != nil {
		return st, fmt.Errorf("installments: %w", err)
	}
	if st.Goals, err = s.Goals.List(ctx, userID); err != nil {
		return st, fmt.Errorf("goals: %w", err)
	}
	if st.Investments, err = s.Investments.List(ctx, userID); err != nil {
		return st, fmt.Errorf("investments: %w", err)
	}
	return st, nil
}

func (s *Store) SaveSettings(ctx context.Context, userID string, v domain.Settings) error {
	return s.Settings.Upsert(ctx, userID, v)
}

func (s *Store) SaveTransaction(ctx context.Context, userID string, t domain.Transaction) error {
	return s.Transactions.Upsert(ctx, userID, t)
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	return s.Transactions.Delete(ctx, userID, id)
}

func (s *Store) SaveCategory(ctx context.Context, userID string, c domain.Category) error {
	return s.Categories.Upsert(ctx, userID, c)
}

func (s *Store) DeleteCategory(ctx context.Context, userID, id string) error {
	return s.Categories.Delete(ctx, userID, id)
}

func (s *Store) SaveCard(ctx context.Context, userID string, c domain.CreditCard) error {
	return s.Cards.Upsert(ctx, userID, c)
}

func (s *Store) DeleteCard(ctx context.Context, userID, id string) error {
	return s.Cards.Delete(ctx, userID, id)
}

func (s *Store) SaveRecurring(ctx context.Context, userID string, r domain.RecurringExpense) error {
	return s.Recurring.Upsert(ctx, userID, r)
}

func (s *Store) DeleteRecurring(ctx context.Context, userID, id string) error {
	return s.Recurring.Delete(ctx, userID, id)
}

func (s *Store) SaveInstallment(ctx context.Context, userID string, i domain.InstallmentPurchase) error {
	return s.Installments.Upsert(ctx, userID, i)
}

func (s *Store) DeleteInstallment(ctx context.Context, userID, id string) error {
	return s.Installments.Delete(ctx, userID, id)
}

func (s *Store) SaveGoal(ctx context.Context, userID string, g domain.FinancialGoal) error {
	return s.Goals.Upsert(ctx, userID, g)
}

func (s *Store) DeleteGoal(ctx context.Context, userID, id string) error {
	return s.Goals.Delete(ctx, userID, id)
}

func (s *Store) SaveInvestment(ctx context.Context, userID string, i domain.Investment) error {
	return s.Investments.Upsert(ctx, userID, i)
}

func (s *Store) DeleteInvestment(ctx context.Context, userID, id string) error {
	return s.Investments.Delete(ctx, userID, id)
}
