package worker

import (
	"context"
	"sync"
	"time"

	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/repository"
)

// InterestWorker periodically credits every bank balance with interest. It
// waits for the host's ready signal before its first accrual and stops as a
// unit on shutdown; an in-flight accrual is a single statement, so no
// partial-iteration cancellation is needed.
type InterestWorker struct {
	repo     repository.Economy
	interval time.Duration
	ready    <-chan struct{}
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewInterestWorker creates an InterestWorker. ready is closed by the host
// once the process is fully up.
func NewInterestWorker(repo repository.Economy, interval time.Duration, ready <-chan struct{}) *InterestWorker {
	return &InterestWorker{
		repo:     repo,
		interval: interval,
		ready:    ready,
		shutdown: make(chan struct{}),
	}
}

// Start launches the accrual loop.
func (w *InterestWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *InterestWorker) run(ctx context.Context) {
	defer w.wg.Done()
	log := logger.FromContext(ctx)

	select {
	case <-w.ready:
	case <-w.shutdown:
		return
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			accounts, err := w.repo.ApplyBankInterest(ctx)
			if err != nil {
				log.Error("Failed to apply bank interest", "error", err)
				continue
			}
			log.Info("Bank interest applied", "accounts", accounts)
		case <-w.shutdown:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Shutdown stops the worker and waits for any in-flight accrual, bounded by
// the context.
func (w *InterestWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down interest worker")
	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Interest worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Interest worker shutdown timeout")
		return ctx.Err()
	}
}
