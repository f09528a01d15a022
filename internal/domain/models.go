package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is income or expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// InstallmentStatus tracks the lifecycle of an installment purchase.
type InstallmentStatus string

const (
	InstallmentActive    InstallmentStatus = "active"
	InstallmentCompleted InstallmentStatus = "completed"
	InstallmentCancelled InstallmentStatus = "cancelled"
)

// GoalStatus tracks a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

// Category groups transactions.
type Category struct {
	ID        string
	Name      string
	Color     string
	IsDefault bool
}

// CreditCard is a card transactions and installments may be charged to.
type CreditCard struct {
	ID                 string
	Name               string
	Limit              decimal.Decimal
	ClosingDay         int
	DueDay             int
	ManualInvoiceValue *decimal.Decimal
}

// Transaction is a single income or expense entry. Date holds a calendar day
// (see DateOf).
type Transaction struct {
	ID                 string
	Description        string
	Amount             decimal.Decimal
	Type               TransactionType
	Date               time.Time
	CategoryID         string
	CardID             *string
	GoalID             *string
	InstallmentID      *string
	RecurringExpenseID *string
	IsRecurring        bool
}

// Generated reports whether the transaction was materialized by the
// recurring generator or the installment engine.
func (t Transaction) Generated() bool {
	return t.InstallmentID != nil || t.RecurringExpenseID != nil
}

// RecurringExpense is a fixed monthly bill.
type RecurringExpense struct {
	ID                 string
	Name               string
	Amount             decimal.Decimal
	CategoryID         string
	DueDay             int
	Active             bool
	LastGeneratedMonth string
}

// InstallmentPurchase is a purchase split into equal monthly payments.
// The number of paid installments is derived from linked transactions.
type InstallmentPurchase struct {
	ID                 string
	Description        string
	CategoryID         string
	CardID             *string
	TotalInstallments  int
	InstallmentAmount  decimal.Decimal
	TotalAmount        decimal.Decimal
	PurchaseDate       time.Time
	DueDay             int
	Status             InstallmentStatus
	LastGeneratedMonth string
	Notes              *string
}

// FinancialGoal is a savings target fed by linked income transactions.
type FinancialGoal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Status        GoalStatus
}

// Investment is a manually valued holding.
type Investment struct {
	ID            string
	Name          string
	Type          string
	InitialAmount decimal.Decimal
	CurrentAmount decimal.Decimal
	StartDate     time.Time
	CategoryID    string
}

// Settings holds the per-user scalar preferences.
type Settings struct {
	BalanceOffset decimal.Decimal
	DarkMode      bool
}

// State is the aggregate loaded and saved for one user.
type State struct {
	Settings
	Transactions      []Transaction
	Categories        []Category
	Cards             []CreditCard
	RecurringExpenses []RecurringExpense
	Installments      []InstallmentPurchase
	Goals             []FinancialGoal
	Investments       []Investment
}
