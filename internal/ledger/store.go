package ledger

import (
	"context"

	"github.com/jask/fincontrol/internal/domain"
)

// Store persists one user's aggregate. Save calls are idempotent upserts
// keyed by entity id; the ledger issues one call per entity per mutation.
//
//go:generate mockgen -destination=mocks/mock_store.go -source=store.go Store
type Store interface {
	Load(ctx context.Context, userID string) (domain.State, error)
	SaveSettings(ctx context.Context, userID string, s domain.Settings) error

	SaveTransaction(ctx context.Context, userID string, t domain.Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) error

	SaveCategory(ctx context.Context, userID string, c domain.Category) error
	DeleteCategory(ctx context.Context, userID, id string) error

	SaveCard(ctx context.Context, userID string, c domain.CreditCard) error
	DeleteCard(ctx context.Context, userID, id string) error

	SaveRecurring(ctx context.Context, userID string, r domain.RecurringExpense) error
	DeleteRecurring(ctx context.Context, userID, id string) error

	SaveInstallment(ctx context.Context, userID string, i domain.InstallmentPurchase) error
	DeleteInstallment(ctx context.Context, userID, id string) error

	SaveGoal(ctx context.Context, userID string, g domain.FinancialGoal) error
	DeleteGoal(ctx context.Context, userID, id string) error

	SaveInvestment(ctx context.Context, userID string, i domain.Investment) error
	DeleteInvestment(ctx context.Context, userID, id string) error
}
