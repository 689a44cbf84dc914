// Package audit runs the scheduled reconciliation job that cross-checks
// every recently touched order against its payment ledger.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
)

const auditBatchSize = 500

// Auditor periodically recomputes payment status from the ledger and flags
// orders whose stored status drifted. It never repairs rows on its own;
// drift means a bug elsewhere and deserves eyes, not a silent overwrite.
type Auditor struct {
	store db.Store
	cron  *cron.Cron

	mu       sync.Mutex
	lastRun  time.Time
	driftRun int64
}

func NewAuditor(store db.Store) *Auditor {
	return &Auditor{
		store: store,
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		// First sweep covers the preceding day so a restart cannot skip
		// drift introduced while the service was down.
		lastRun: time.Now().Add(-24 * time.Hour),
	}
}

// Start schedules the reconciliation sweep with the given cron spec
func (a *Auditor) Start(spec string) error {
	_, err := a.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := a.Sweep(ctx); err != nil {
			log.Error().Err(err).Msg("payment audit sweep failed")
		}
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (a *Auditor) Stop() {
	<-a.cron.Stop().Done()
}

// Sweep checks every order updated since the previous sweep. It returns the
// first query error; individual drifted orders are logged and counted.
func (a *Auditor) Sweep(ctx context.Context) error {
	a.mu.Lock()
	since := a.lastRun
	a.mu.Unlock()
	started := time.Now()

	orders, err := a.store.ListOrdersUpdatedSince(ctx, db.ListOrdersUpdatedSinceParams{
		Since: since,
		Limit: auditBatchSize,
	})
	if err != nil {
		return err
	}

	var drifted int64
	for _, order := range orders {
		paid, err := a.store.SumCompletedPaymentsByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		want := pricing.StatusFor(paid, order.Total)
		if order.PaymentStatus != want {
			drifted++
			log.Warn().
				Str("order_number", order.OrderNumber).
				Str("stored_status", order.PaymentStatus).
				Str("ledger_status", want).
				Int64("ledger_paid", paid).
				Int64("order_total", order.Total).
				Msg("payment status drift detected")
		}
	}

	a.mu.Lock()
	a.lastRun = started
	a.driftRun = drifted
	a.mu.Unlock()

	log.Info().Int("orders_checked", len(orders)).Int64("drifted", drifted).
		Msg("payment audit sweep finished")
	return nil
}

// LastDriftCount reports how many orders drifted in the most recent sweep
func (a *Auditor) LastDriftCount() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.driftRun
}
