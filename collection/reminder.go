package collection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"internship-alert/internal/logger"
	"internship-alert/models"
	"internship-alert/notify"
)

const (
	DefaultScanInterval   = 5 * time.Minute
	DefaultReminderWindow = 24 * time.Hour
)

// Scanner periodically checks saved records for approaching deadlines and
// emits one reminder per record for its whole lifetime. The notified set is
// keyed by record id and only ever grows; unsaving and resaving a record does
// not re-arm it (callers that want that behavior can use Forget).
type Scanner struct {
	col      *Collection
	notifier notify.Notifier
	interval time.Duration
	window   time.Duration

	mu       sync.Mutex
	notified map[string]struct{}

	now func() time.Time

	// onRemind, when set, is invoked after each reminder notification.
	// The API service uses it to publish domain events.
	onRemind func(ctx context.Context, rec models.Internship)
}

func NewScanner(col *Collection, notifier notify.Notifier, interval, window time.Duration) *Scanner {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	if window <= 0 {
		window = DefaultReminderWindow
	}
	return &Scanner{
		col:      col,
		notifier: notifier,
		interval: interval,
		window:   window,
		notified: make(map[string]struct{}),
		now:      time.Now,
	}
}

// OnRemind registers a callback fired after each reminder. Must be called
// before Run.
func (s *Scanner) OnRemind(fn func(ctx context.Context, rec models.Internship)) {
	s.onRemind = fn
}

// Run scans on a fixed interval until the context is canceled. Each tick
// reads the current record set, not a snapshot taken at startup.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Log.Infof("reminder scanner started interval=%s window=%s", s.interval, s.window)
	for {
		select {
		case <-ticker.C:
			s.scanOnce(ctx, s.now())
		case <-ctx.Done():
			logger.Log.Info("reminder scanner stopped")
			return
		}
	}
}

// scanOnce walks saved records once. Records whose deadline cannot be parsed
// are skipped; records already notified never fire again.
func (s *Scanner) scanOnce(ctx context.Context, now time.Time) {
	for _, rec := range s.col.All() {
		if !rec.IsSaved {
			continue
		}
		if s.alreadyNotified(rec.ID) {
			continue
		}

		left, ok := rec.ParsedDeadline().Until(now)
		if !ok {
			continue
		}
		if left <= 0 || left > s.window {
			continue
		}

		n := notify.Notification{
			Title:       "Reminder: Deadline Approaching!",
			Description: fmt.Sprintf("The deadline for %q is tomorrow.", rec.Title),
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			logger.Log.Errorf("failed to deliver reminder for %s: %v", rec.ID, err)
			continue
		}
		s.markNotified(rec.ID)

		if s.onRemind != nil {
			s.onRemind(ctx, rec)
		}
	}
}

func (s *Scanner) alreadyNotified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, done := s.notified[id]
	return done
}

func (s *Scanner) markNotified(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified[id] = struct{}{}
}

// Forget drops a record from the notified set so its reminder can fire
// again. Not called by the save-toggle path on purpose.
func (s *Scanner) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notified, id)
}
