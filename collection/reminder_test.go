package collection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-alert/models"
	"internship-alert/notify"
)

func newTestScanner(c *Collection, n notify.Notifier) *Scanner {
	s := NewScanner(c, n, time.Minute, DefaultReminderWindow)
	s.now = func() time.Time { return testNow }
	return s
}

func TestScanOnce_RemindsSavedRecordWithinWindow(t *testing.T) {
	c := newTestCollection(
		rec("soon", "SWE Intern", "Acme", models.PlatformLinkedIn, testNow.Add(10*time.Hour).Format(time.RFC3339), true, testNow),
	)
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	s.scanOnce(context.Background(), testNow)

	got := sink.Recent(0)
	require.Len(t, got, 1)
	assert.Equal(t, "Reminder: Deadline Approaching!", got[0].Title)
	assert.Contains(t, got[0].Description, "SWE Intern")
}

func TestScanOnce_FiresExactlyOnceAcrossTicks(t *testing.T) {
	c := newTestCollection(
		rec("soon", "SWE Intern", "Acme", models.PlatformLinkedIn, testNow.Add(10*time.Hour).Format(time.RFC3339), true, testNow),
	)
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	for i := 0; i < 5; i++ {
		s.scanOnce(context.Background(), testNow)
	}

	assert.Len(t, sink.Recent(0), 1)
}

func TestScanOnce_UnsaveThenResaveDoesNotRefire(t *testing.T) {
	c := newTestCollection(
		rec("soon", "SWE Intern", "Acme", models.PlatformLinkedIn, testNow.Add(10*time.Hour).Format(time.RFC3339), true, testNow),
	)
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	s.scanOnce(context.Background(), testNow)
	c.ToggleSaved("soon")
	c.ToggleSaved("soon")
	s.scanOnce(context.Background(), testNow)

	assert.Len(t, sink.Recent(0), 1)
}

func TestScanOnce_SkipsUnsavedExpiredFarAndUnparseable(t *testing.T) {
	c := newTestCollection(
		rec("unsaved", "A", "X", models.PlatformYouTube, testNow.Add(10*time.Hour).Format(time.RFC3339), false, testNow),
		rec("expired", "B", "X", models.PlatformYouTube, testNow.Add(-time.Hour).Format(time.RFC3339), true, testNow),
		rec("far", "C", "X", models.PlatformYouTube, testNow.Add(48*time.Hour).Format(time.RFC3339), true, testNow),
		rec("raw", "D", "X", models.PlatformYouTube, "end of summer", true, testNow),
	)
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	s.scanOnce(context.Background(), testNow)

	assert.Empty(t, sink.Recent(0))
}

func TestScanOnce_SeesRecordsAddedAfterStart(t *testing.T) {
	c := newTestCollection()
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	s.scanOnce(context.Background(), testNow)
	require.Empty(t, sink.Recent(0))

	c.Add(rec("late", "Late Arrival", "Acme", models.PlatformTelegram, testNow.Add(3*time.Hour).Format(time.RFC3339), true, testNow))
	s.scanOnce(context.Background(), testNow)

	assert.Len(t, sink.Recent(0), 1)
}

func TestScanOnce_InvokesOnRemindCallback(t *testing.T) {
	c := newTestCollection(
		rec("soon", "SWE Intern", "Acme", models.PlatformLinkedIn, testNow.Add(10*time.Hour).Format(time.RFC3339), true, testNow),
	)
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	var reminded []string
	s.OnRemind(func(_ context.Context, rec models.Internship) {
		reminded = append(reminded, rec.ID)
	})

	s.scanOnce(context.Background(), testNow)
	s.scanOnce(context.Background(), testNow)

	assert.Equal(t, []string{"soon"}, reminded)
}

func TestForget_RearmsReminder(t *testing.T) {
	c := newTestCollection(
		rec("soon", "SWE Intern", "Acme", models.PlatformLinkedIn, testNow.Add(10*time.Hour).Format(time.RFC3339), true, testNow),
	)
	sink := notify.NewMemoryNotifier(10)
	s := newTestScanner(c, sink)

	s.scanOnce(context.Background(), testNow)
	s.Forget("soon")
	s.scanOnce(context.Background(), testNow)

	assert.Len(t, sink.Recent(0), 2)
}
