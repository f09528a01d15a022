package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fincontrol/internal/config"
	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/ledger"
)

// App is the dashboard model. Every ledger call runs inside a tea.Cmd and
// reports back with a message; the view renders the last snapshot.
type App struct {
	ctx        context.Context
	led        *ledger.Ledger
	reset      func(context.Context) error
	state      appState
	snap       domain.State
	instCursor int
	txCursor   int
	txMonth    string // month shown by the transactions view; empty is the current month
	txType     domain.TransactionType
	modal      modalState
	status     string
	currency   string
	dateFormat string
}

type appState string

const (
	viewDashboard    appState = "dashboard"
	viewTransactions appState = "transactions"
)

type modalState string

const (
	modalNone          modalState = ""
	modalConfirmCancel modalState = "confirmCancel"
	modalConfirmReset  modalState = "confirmReset"
)

// messages
type (
	refreshedMsg ledger.Report
	changedMsg   string
	errMsg       struct{ error }
)

// Option configures an App.
type Option func(*App)

// WithReset enables the [x] reset action; fn must leave the ledger's store
// empty apart from defaults.
func WithReset(fn func(context.Context) error) Option {
	return func(a *App) { a.reset = fn }
}

func New(ctx context.Context, cfg config.Config, led *ledger.Ledger, opts ...Option) *App {
	a := &App{
		ctx:        ctx,
		led:        led,
		state:      viewDashboard,
		currency:   cfg.UI.CurrencySymbol,
		dateFormat: cfg.UI.DateFormat,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.snap = led.Snapshot()
	return a
}

// Init reconciles recurring bills and installments before the first frame.
func (a *App) Init() tea.Cmd {
	return a.refreshCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab":
			if a.state == viewDashboard {
				a.state = viewTransactions
			} else {
				a.state = viewDashboard
			}
		case "left", "h":
			a.shiftMonth(-1)
		case "right", "l":
			a.shiftMonth(1)
		case "t":
			a.cycleType()
		case "down", "j":
			a.moveCursor(1)
		case "up", "k":
			a.moveCursor(-1)
		case "r":
			a.status = "reconciling..."
			return a, a.refreshCmd()
		case "d":
			return a, a.toggleDarkCmd()
		case "p":
			if inst, ok := a.selectedInstallment(); ok {
				return a, a.payNextCmd(inst)
			}
		case "u":
			if inst, ok := a.selectedInstallment(); ok {
				return a, a.undoCmd(inst)
			}
		case "c":
			if inst, ok := a.selectedInstallment(); ok && inst.Status != domain.InstallmentCancelled {
				a.modal = modalConfirmCancel
			}
		case "x":
			if a.reset != nil {
				a.modal = modalConfirmReset
			}
		}
	case refreshedMsg:
		a.sync()
		if n := len(m.Created); n > 0 {
			a.status = fmt.Sprintf("generated %d transaction(s)", n)
		} else if a.status == "reconciling..." {
			a.status = "up to date"
		}
	case changedMsg:
		a.sync()
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	modal := a.modal
	switch m.String() {
	case "y", "enter":
		a.modal = modalNone
		switch modal {
		case modalConfirmCancel:
			if inst, ok := a.selectedInstallment(); ok {
				return a, a.cancelCmd(inst)
			}
		case modalConfirmReset:
			return a, a.resetCmd()
		}
	case "n", "esc":
		a.modal = modalNone
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.state {
	case viewDashboard:
		a.instCursor = clamp(a.instCursor+delta, len(a.snap.Installments))
	case viewTransactions:
		a.txCursor = clamp(a.txCursor+delta, len(a.visibleTransactions()))
	}
}

func (a *App) shiftMonth(delta int) {
	if a.state != viewTransactions {
		return
	}
	a.txMonth = domain.ShiftMonth(a.transactionsMonth(), delta)
	if a.txMonth == a.month() {
		a.txMonth = ""
	}
	a.txCursor = 0
}

// cycleType steps the type filter through all, expenses and income.
func (a *App) cycleType() {
	if a.state != viewTransactions {
		return
	}
	switch a.txType {
	case "":
		a.txType = domain.Expense
	case domain.Expense:
		a.txType = domain.Income
	default:
		a.txType = ""
	}
	a.txCursor = 0
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (a *App) sync() {
	a.snap = a.led.Snapshot()
	a.instCursor = clamp(a.instCursor, len(a.snap.Installments))
	a.txCursor = clamp(a.txCursor, len(a.visibleTransactions()))
}

func (a *App) selectedInstallment() (domain.InstallmentPurchase, bool) {
	if a.state != viewDashboard || a.instCursor >= len(a.snap.Installments) {
		return domain.InstallmentPurchase{}, false
	}
	return a.snap.Installments[a.instCursor], true
}

func (a *App) month() string {
	return domain.MonthKey(a.led.Today())
}

func (a *App) transactionsMonth() string {
	if a.txMonth != "" {
		return a.txMonth
	}
	return a.month()
}

func (a *App) visibleTransactions() []domain.Transaction {
	return a.led.Transactions(domain.TransactionFilter{Month: a.transactionsMonth(), Type: a.txType})
}

// commands
func (a *App) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg(a.led.Refresh(a.ctx))
	}
}

func (a *App) toggleDarkCmd() tea.Cmd {
	return func() tea.Msg {
		if a.led.ToggleDarkMode(a.ctx) {
			return changedMsg("dark mode on")
		}
		return changedMsg("dark mode off")
	}
}

func (a *App) payNextCmd(inst domain.InstallmentPurchase) tea.Cmd {
	return func() tea.Msg {
		tx, ok := a.led.PayNextInstallment(a.ctx, inst.ID)
		if !ok {
			return changedMsg(inst.Description + ": nothing left to pay")
		}
		return changedMsg("paid " + tx.Description)
	}
}

func (a *App) undoCmd(inst domain.InstallmentPurchase) tea.Cmd {
	return func() tea.Msg {
		if !a.led.UndoLastInstallment(a.ctx, inst.ID) {
			return changedMsg(inst.Description + ": no payment to undo")
		}
		return changedMsg(inst.Description + ": last payment removed")
	}
}

func (a *App) cancelCmd(inst domain.InstallmentPurchase) tea.Cmd {
	return func() tea.Msg {
		a.led.CancelInstallment(a.ctx, inst.ID)
		return changedMsg(inst.Description + " cancelled")
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.reset(a.ctx); err != nil {
			return errMsg{err}
		}
		if err := a.led.Load(a.ctx); err != nil {
			return errMsg{err}
		}
		return changedMsg("all data removed")
	}
}
