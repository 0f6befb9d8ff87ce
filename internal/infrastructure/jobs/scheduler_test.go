package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeInvoices struct {
	asOf time.Time
	err  error
}

func (f *fakeInvoices) MarkOverdue(_ context.Context, asOf time.Time) (int, error) {
	f.asOf = asOf
	return 2, f.err
}

type fakeQuotes struct {
	called bool
}

func (f *fakeQuotes) ExpireStale(context.Context, time.Time) (int, error) {
	f.called = true
	return 1, nil
}

func TestSweeper_RunOnce(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("runs both sweeps with the current time", func(t *testing.T) {
		inv, q := &fakeInvoices{}, &fakeQuotes{}
		s := NewSweeper(inv, q)
		s.now = func() time.Time { return now }

		s.RunOnce(context.Background())

		if !inv.asOf.Equal(now) {
			t.Fatalf("expected asOf %v, got %v", now, inv.asOf)
		}
		if !q.called {
			t.Fatalf("expected quote expiry to run")
		}
	})

	t.Run("invoice failure does not skip quotes", func(t *testing.T) {
		inv, q := &fakeInvoices{err: errors.New("db down")}, &fakeQuotes{}
		s := NewSweeper(inv, q)
		s.now = func() time.Time { return now }

		s.RunOnce(context.Background())

		if !q.called {
			t.Fatalf("expected quote expiry to run after invoice failure")
		}
	})
}
