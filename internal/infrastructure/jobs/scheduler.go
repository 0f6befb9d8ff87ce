package jobs

import (
	"context"
	"time"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

type OverdueMarker interface {
	MarkOverdue(ctx context.Context, asOf time.Time) (int, error)
}

type QuoteExpirer interface {
	ExpireStale(ctx context.Context, asOf time.Time) (int, error)
}

// Sweeper runs the periodic status sweeps: overdue invoices and expired quotes.
type Sweeper struct {
	invoices OverdueMarker
	quotes   QuoteExpirer
	timeout  time.Duration
	now      func() time.Time

	scheduler *gocron.Scheduler
	stop      chan bool
}

func NewSweeper(invoices OverdueMarker, quotes QuoteExpirer) *Sweeper {
	return &Sweeper{invoices: invoices, quotes: quotes, timeout: 5 * time.Minute, now: time.Now}
}

// RunOnce performs both sweeps. Failures are logged and not retried.
func (s *Sweeper) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	now := s.now().UTC()

	if n, err := s.invoices.MarkOverdue(ctx, now); err != nil {
		log.WithError(err).Errorf("[jobs][overdue] sweep failed marked=%d", n)
	} else {
		log.Printf("[jobs][overdue] sweep done marked=%d", n)
	}

	if n, err := s.quotes.ExpireStale(ctx, now); err != nil {
		log.WithError(err).Errorf("[jobs][expiry] sweep failed expired=%d", n)
	} else {
		log.Printf("[jobs][expiry] sweep done expired=%d", n)
	}
}

// Start schedules RunOnce every intervalMinutes until Stop is called.
func (s *Sweeper) Start(intervalMinutes uint64) {
	if intervalMinutes == 0 {
		intervalMinutes = 60
	}
	s.scheduler = gocron.NewScheduler()
	s.scheduler.Every(intervalMinutes).Minutes().Do(s.RunOnce, context.Background())
	s.stop = s.scheduler.Start()
	log.Printf("[jobs] scheduler started interval_minutes=%d", intervalMinutes)
}

func (s *Sweeper) Stop() {
	if s.scheduler == nil {
		return
	}
	s.stop <- true
	s.scheduler.Clear()
	s.scheduler = nil
	log.Printf("[jobs] scheduler stopped")
}
