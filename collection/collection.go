package collection

import (
	"sort"
	"strings"
	"sync"
	"time"

	"internship-alert/models"
)

// Scope selects which records a view considers.
type Scope string

const (
	ScopeAll   Scope = "all"
	ScopeSaved Scope = "saved"
)

// SortOption orders a view.
type SortOption string

const (
	// SortDeadline orders by parsed deadline ascending, expired records last.
	SortDeadline SortOption = "deadline"
	// SortNewest orders by creation time descending.
	SortNewest SortOption = "newest"
)

// ViewOptions are the composable filters and the sort for a view.
// Zero values mean "no restriction" (scope all, every platform, no query).
type ViewOptions struct {
	Scope    Scope
	Platform models.Platform
	Query    string
	Sort     SortOption
}

// Collection owns the in-memory internship set. Records are kept
// most-recent-first by construction: Add always prepends. All mutation goes
// through Add and ToggleSaved; readers get copies, never the backing slice.
type Collection struct {
	mu      sync.RWMutex
	records []models.Internship
	now     func() time.Time
}

func New() *Collection {
	return &Collection{now: time.Now}
}

// Add prepends a record. No dedup by content; id uniqueness is the
// generator's job, not enforced here.
func (c *Collection) Add(rec models.Internship) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append([]models.Internship{rec}, c.records...)
}

// ToggleSaved flips the saved flag of the matching record and returns the
// updated copy. Unknown ids are a no-op with found=false.
func (c *Collection) ToggleSaved(id string) (models.Internship, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].ID == id {
			c.records[i].IsSaved = !c.records[i].IsSaved
			return c.records[i], true
		}
	}
	return models.Internship{}, false
}

// Get returns a copy of the record with the given id.
func (c *Collection) Get(id string) (models.Internship, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.records {
		if c.records[i].ID == id {
			return c.records[i], true
		}
	}
	return models.Internship{}, false
}

// All returns a copy of every record in insertion order (most recent first).
func (c *Collection) All() []models.Internship {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Internship, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// View is a pure projection: filters compose by AND, then the sort is
// applied. The collection itself is never reordered.
func (c *Collection) View(opt ViewOptions) []models.Internship {
	filtered := c.filter(opt)

	switch opt.Sort {
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case SortDeadline:
		now := c.now()
		sort.SliceStable(filtered, func(i, j int) bool {
			return deadlineLess(filtered[i], filtered[j], now)
		})
	}

	return filtered
}

func (c *Collection) filter(opt ViewOptions) []models.Internship {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(opt.Query))

	out := make([]models.Internship, 0, len(c.records))
	for _, rec := range c.records {
		if opt.Scope == ScopeSaved && !rec.IsSaved {
			continue
		}
		if opt.Platform != "" && rec.Platform != opt.Platform {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(rec.Title), query) &&
			!strings.Contains(strings.ToLower(rec.Company), query) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// deadlineLess orders two records under deadline sort: earlier valid
// deadlines first, expired records after all unexpired ones. When either
// side fails to parse the pair keeps its relative order.
func deadlineLess(a, b models.Internship, now time.Time) bool {
	da := a.ParsedDeadline()
	db := b.ParsedDeadline()
	if !da.Valid || !db.Valid {
		return false
	}

	aPast := da.ExpiredAt(now)
	bPast := db.ExpiredAt(now)
	switch {
	case aPast && bPast:
		return false
	case aPast:
		return false
	case bPast:
		return true
	}
	return da.Time.Before(db.Time)
}
