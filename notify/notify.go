package notify

import (
	"context"
	"sync"
	"time"
)

// Variant marks how a notification should be presented.
type Variant string

const (
	// VariantDefault is an informational notification.
	VariantDefault Variant = ""
	// VariantDestructive marks failures.
	VariantDestructive Variant = "destructive"
)

// Notification is one user-facing message: extraction results, save toggles
// and deadline reminders all go through this shape.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier delivers notifications toward a UI collaborator.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// MemoryNotifier keeps the most recent notifications in memory, newest first.
// It backs the /notifications endpoint and the tests.
type MemoryNotifier struct {
	mu    sync.Mutex
	limit int
	items []Notification
}

const defaultMemoryLimit = 100

func NewMemoryNotifier(limit int) *MemoryNotifier {
	if limit <= 0 {
		limit = defaultMemoryLimit
	}
	return &MemoryNotifier{limit: limit}
}

func (m *MemoryNotifier) Notify(_ context.Context, n Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]Notification{n}, m.items...)
	if len(m.items) > m.limit {
		m.items = m.items[:m.limit]
	}
	return nil
}

// Recent returns up to limit notifications, newest first.
// limit <= 0 returns all retained notifications.
func (m *MemoryNotifier) Recent(limit int) []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Notification, n)
	copy(out, m.items[:n])
	return out
}

// Multi fans a notification out to several notifiers. Delivery is
// best-effort: the first error is returned but every notifier is attempted.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) error {
	var first error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil && first == nil {
			first = err
		}
	}
	return first
}
