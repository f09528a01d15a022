// Package ledger holds one user's finance state in memory and applies every
// mutation to it, keeping the bookkeeping rules (goal balances, balance
// offset, reference guards) uniform for user actions and generated entries.
//
// Each mutation updates memory first and then issues one store write per
// touched entity. Store failures are logged and neither retried nor rolled
// back; the next successful write of the same entity heals the drift.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/fincontrol/internal/domain"
	"github.com/jask/fincontrol/internal/installment"
	"github.com/jask/fincontrol/internal/logger"
	"github.com/jask/fincontrol/internal/recurring"
)

// Ledger is the state container for one user.
type Ledger struct {
	mu     sync.Mutex
	store  Store
	userID string
	log    zerolog.Logger
	now    func() time.Time
	newID  func() string
	state  domain.State
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the source of "today". The returned time's location decides
// the calendar date used for month keys.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger sets the logger used for warnings and store failures.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// WithIDs sets the id generator.
func WithIDs(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// New returns an empty ledger; call Load to populate it.
func New(store Store, userID string, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		userID: userID,
		log:    logger.Nop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With().Str("user_id", userID).Logger()
	return l
}

// UserID returns the owner of the ledger.
func (l *Ledger) UserID() string { return l.userID }

// Today returns the ledger clock.
func (l *Ledger) Today() time.Time { return l.now() }

// Load replaces the in-memory state with the stored one.
func (l *Ledger) Load(ctx context.Context) error {
	st, err := l.store.Load(ctx, l.userID)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	l.mu.Lock()
	l.state = st.Clone()
	l.mu.Unlock()
	l.log.Debug().
		Int("transactions", len(st.Transactions)).
		Int("recurring", len(st.RecurringExpenses)).
		Int("installments", len(st.Installments)).
		Msg("state loaded")
	return nil
}

// Restore replaces the in-memory state with st without touching the store.
// Writes made afterwards still go to the store.
func (l *Ledger) Restore(st domain.State) {
	l.mu.Lock()
	l.state = st.Clone()
	l.mu.Unlock()
	l.log.Warn().Int("transactions", len(st.Transactions)).Msg("state restored from snapshot")
}

// Snapshot returns a copy of the current state.
func (l *Ledger) Snapshot() domain.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Report describes what a reconciliation pass did.
type Report struct {
	Recurring    recurring.Result
	Installments installment.Result
	Created      []domain.Transaction
}

// Reconcile runs the recurring generator and then the installment engine
// against the current state as of today, applying their results through the
// regular mutation paths.
func (l *Ledger) Reconcile(ctx context.Context, today time.Time) Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	var rep Report
	rep.Recurring = recurring.Reconcile(l.state.RecurringExpenses, l.state.Transactions, today)
	for _, t := range rep.Recurring.Create {
		rep.Created = append(rep.Created, l.addTransaction(ctx, t))
	}
	for _, u := range rep.Recurring.Updates {
		for i := range l.state.RecurringExpenses {
			r := &l.state.RecurringExpenses[i]
			if r.ID != u.ExpenseID {
				continue
			}
			r.LastGeneratedMonth = u.Month
			l.persist("save recurring", r.ID, l.store.SaveRecurring(ctx, l.userID, *r))
		}
	}

	rep.Installments = installment.Reconcile(l.state.Installments, l.state.Transactions, today)
	for _, t := range rep.Installments.Create {
		rep.Created = append(rep.Created, l.addTransaction(ctx, t))
	}
	for _, u := range rep.Installments.Updates {
		l.saveInstallment(ctx, u)
	}

	if len(rep.Created) > 0 || len(rep.Recurring.Updates) > 0 || len(rep.Installments.Updates) > 0 {
		l.log.Info().
			Str("month", domain.MonthKey(today)).
			Int("created", len(rep.Created)).
			Int("recurring_updates", len(rep.Recurring.Updates)).
			Int("installment_updates", len(rep.Installments.Updates)).
			Msg("reconciled")
	}
	return rep
}

// Refresh reconciles as of the ledger clock.
func (l *Ledger) Refresh(ctx context.Context) Report {
	return l.Reconcile(ctx, l.now())
}

func (l *Ledger) persist(op, id string, err error) {
	if err != nil {
		l.log.Error().Err(err).Str("op", op).Str("id", id).Msg("store write failed")
	}
}
