package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unseeyou/everything-bot/internal/domain"
)

type fakeInterestRepo struct {
	runs  atomic.Int64
	calls chan struct{}
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{calls: make(chan struct{}, 16)}
}

func (f *fakeInterestRepo) ApplyBankInterest(_ context.Context) (int64, error) {
	f.runs.Add(1)
	select {
	case f.calls <- struct{}{}:
	default:
	}
	return 1, nil
}

func (f *fakeInterestRepo) GetAccount(_ context.Context, _ string) (domain.Money, domain.Money, string, error) {
	return 0, 0, "", nil
}

func (f *fakeInterestRepo) PutAccount(_ context.Context, _ string, _, _ domain.Money, _ string) error {
	return nil
}

func (f *fakeInterestRepo) GetJob(_ context.Context, _ string) (string, error) { return "", nil }
func (f *fakeInterestRepo) SetJob(_ context.Context, _, _ string) error        { return nil }

func TestInterestWorker_AccruesAfterReady(t *testing.T) {
	repo := newFakeInterestRepo()
	ready := make(chan struct{})
	w := NewInterestWorker(repo, 10*time.Millisecond, ready)
	w.Start(context.Background())

	// Nothing runs before the ready signal.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), repo.runs.Load())

	close(ready)
	select {
	case <-repo.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("interest never accrued after ready")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(shutdownCtx))
}

func TestInterestWorker_ShutdownBeforeReady(t *testing.T) {
	repo := newFakeInterestRepo()
	w := NewInterestWorker(repo, time.Hour, make(chan struct{}))
	w.Start(context.Background())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(shutdownCtx))
	assert.Equal(t, int64(0), repo.runs.Load())
}

func TestInterestWorker_StopsOnContextCancel(t *testing.T) {
	repo := newFakeInterestRepo()
	ready := make(chan struct{})
	close(ready)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewInterestWorker(repo, 10*time.Millisecond, ready)
	w.Start(ctx)

	select {
	case <-repo.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("interest never accrued")
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	require.NoError(t, w.Shutdown(shutdownCtx))
}
