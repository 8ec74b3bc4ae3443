package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-alert/models"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestCollection(recs ...models.Internship) *Collection {
	c := New()
	c.now = func() time.Time { return testNow }
	// Add prepends, so feed in reverse to keep the slice order of recs.
	for i := len(recs) - 1; i >= 0; i-- {
		c.Add(recs[i])
	}
	return c
}

func rec(id, title, company string, platform models.Platform, deadline string, saved bool, createdAt time.Time) models.Internship {
	return models.Internship{
		ID:        id,
		Title:     title,
		Company:   company,
		Platform:  platform,
		Deadline:  deadline,
		IsSaved:   saved,
		CreatedAt: createdAt,
	}
}

func TestAddPrepends(t *testing.T) {
	c := New()
	c.Add(rec("a", "First", "Acme", models.PlatformLinkedIn, "", false, testNow))
	c.Add(rec("b", "Second", "Acme", models.PlatformLinkedIn, "", false, testNow))

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestAddPrepends_RegardlessOfDeadline(t *testing.T) {
	// A record with a far-future deadline still lands at index 0 of the
	// unsorted "all" view.
	c := newTestCollection(
		rec("old", "Old", "Acme", models.PlatformYouTube, testNow.Add(time.Hour).Format(time.RFC3339), false, testNow.Add(-time.Hour)),
	)
	c.Add(rec("new", "New", "Beta", models.PlatformLinkedIn, testNow.Add(1000*time.Hour).Format(time.RFC3339), false, testNow))

	view := c.View(ViewOptions{Scope: ScopeAll})
	require.NotEmpty(t, view)
	assert.Equal(t, "new", view[0].ID)
}

func TestToggleSaved_DoubleToggleRestores(t *testing.T) {
	c := newTestCollection(
		rec("a", "SWE Intern", "Acme", models.PlatformLinkedIn, "", false, testNow),
		rec("b", "Data Intern", "Beta", models.PlatformYouTube, "", true, testNow),
	)

	first, found := c.ToggleSaved("a")
	require.True(t, found)
	assert.True(t, first.IsSaved)

	second, found := c.ToggleSaved("a")
	require.True(t, found)
	assert.False(t, second.IsSaved)

	// The other record is untouched.
	other, found := c.Get("b")
	require.True(t, found)
	assert.True(t, other.IsSaved)
	assert.Equal(t, "Data Intern", other.Title)
}

func TestToggleSaved_UnknownIDIsNoop(t *testing.T) {
	c := newTestCollection(rec("a", "SWE Intern", "Acme", models.PlatformLinkedIn, "", false, testNow))

	_, found := c.ToggleSaved("missing")
	assert.False(t, found)

	got, _ := c.Get("a")
	assert.False(t, got.IsSaved)
}

func TestView_FiltersCompose(t *testing.T) {
	// Fixture with at least one record satisfying each subset of the three
	// predicates (saved, platform=Telegram, query "data").
	recs := []models.Internship{
		rec("1", "Data Science Intern", "Acme", models.PlatformTelegram, "", true, testNow),   // all three
		rec("2", "Data Analyst Intern", "Beta", models.PlatformTelegram, "", false, testNow),  // platform+query
		rec("3", "Data Engineer Intern", "Gamma", models.PlatformYouTube, "", true, testNow),  // saved+query
		rec("4", "Marketing Intern", "Delta", models.PlatformTelegram, "", true, testNow),     // saved+platform
		rec("5", "Data Intern", "Epsilon", models.PlatformLinkedIn, "", false, testNow),       // query only
		rec("6", "Design Intern", "Zeta", models.PlatformTelegram, "", false, testNow),        // platform only
		rec("7", "Backend Intern", "Eta", models.PlatformInstagram, "", true, testNow),        // saved only
		rec("8", "Frontend Intern", "Theta", models.PlatformLinkedIn, "", false, testNow),     // none
	}
	c := newTestCollection(recs...)

	view := c.View(ViewOptions{Scope: ScopeSaved, Platform: models.PlatformTelegram, Query: "data"})
	require.Len(t, view, 1)
	assert.Equal(t, "1", view[0].ID)
}

func TestView_QueryMatchesTitleOrCompany(t *testing.T) {
	c := newTestCollection(
		rec("1", "SWE Intern", "DataDriven Co.", models.PlatformYouTube, "", false, testNow),
		rec("2", "Data Science Intern", "Acme", models.PlatformYouTube, "", false, testNow),
		rec("3", "Marketing Intern", "Beta", models.PlatformYouTube, "", false, testNow),
	)

	view := c.View(ViewOptions{Query: "DATA"})
	require.Len(t, view, 2)
	assert.Equal(t, "1", view[0].ID)
	assert.Equal(t, "2", view[1].ID)
}

func TestView_SortNewestIsStableDescending(t *testing.T) {
	t0 := testNow.Add(-3 * time.Hour)
	t1 := testNow.Add(-1 * time.Hour)
	c := newTestCollection(
		rec("a", "A", "X", models.PlatformYouTube, "", false, t1),
		rec("b", "B", "X", models.PlatformYouTube, "", false, t0),
		rec("c", "C", "X", models.PlatformYouTube, "", false, t1), // same timestamp as "a"
		rec("d", "D", "X", models.PlatformYouTube, "", false, testNow),
	)

	view := c.View(ViewOptions{Sort: SortNewest})
	require.Len(t, view, 4)
	assert.Equal(t, "d", view[0].ID)
	// Equal timestamps keep their insertion order: a before c.
	assert.Equal(t, "a", view[1].ID)
	assert.Equal(t, "c", view[2].ID)
	assert.Equal(t, "b", view[3].ID)
}

func TestView_SortDeadlineAscending(t *testing.T) {
	c := newTestCollection(
		rec("late", "Late", "X", models.PlatformYouTube, testNow.Add(30*24*time.Hour).Format(time.RFC3339), false, testNow),
		rec("soon", "Soon", "X", models.PlatformYouTube, testNow.Add(24*time.Hour).Format(time.RFC3339), false, testNow),
		rec("mid", "Mid", "X", models.PlatformYouTube, testNow.Add(14*24*time.Hour).Format(time.RFC3339), false, testNow),
	)

	view := c.View(ViewOptions{Sort: SortDeadline})
	require.Len(t, view, 3)
	assert.Equal(t, "soon", view[0].ID)
	assert.Equal(t, "mid", view[1].ID)
	assert.Equal(t, "late", view[2].ID)
}

func TestView_SortDeadlineExpiredLast(t *testing.T) {
	expired := testNow.Add(-2 * 24 * time.Hour).Format(time.RFC3339)
	future := testNow.Add(5 * 24 * time.Hour).Format(time.RFC3339)

	// Both input orderings: expired first, expired last.
	for _, recs := range [][]models.Internship{
		{
			rec("expired", "Expired", "X", models.PlatformYouTube, expired, false, testNow),
			rec("future", "Future", "X", models.PlatformYouTube, future, false, testNow),
		},
		{
			rec("future", "Future", "X", models.PlatformYouTube, future, false, testNow),
			rec("expired", "Expired", "X", models.PlatformYouTube, expired, false, testNow),
		},
	} {
		c := newTestCollection(recs...)
		view := c.View(ViewOptions{Sort: SortDeadline})
		require.Len(t, view, 2)
		assert.Equal(t, "future", view[0].ID)
		assert.Equal(t, "expired", view[1].ID)
	}
}

func TestView_SortDeadlineUnparseableKeepsOrder(t *testing.T) {
	c := newTestCollection(
		rec("raw", "Raw", "X", models.PlatformYouTube, "rolling basis", false, testNow),
		rec("dated", "Dated", "X", models.PlatformYouTube, testNow.Add(48*time.Hour).Format(time.RFC3339), false, testNow),
	)

	// The pair with an unparseable side is treated as equal, so insertion
	// order survives the stable sort.
	view := c.View(ViewOptions{Sort: SortDeadline})
	require.Len(t, view, 2)
	assert.Equal(t, "raw", view[0].ID)
	assert.Equal(t, "dated", view[1].ID)
}

func TestView_DoesNotMutateCollection(t *testing.T) {
	c := newTestCollection(
		rec("a", "A", "X", models.PlatformYouTube, testNow.Add(48*time.Hour).Format(time.RFC3339), false, testNow.Add(-time.Hour)),
		rec("b", "B", "X", models.PlatformYouTube, testNow.Add(time.Hour).Format(time.RFC3339), false, testNow),
	)

	_ = c.View(ViewOptions{Sort: SortDeadline})

	all := c.All()
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
}
