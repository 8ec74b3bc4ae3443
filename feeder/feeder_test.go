package feeder_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-alert/feeder"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Internship Channel</title>
    <item>
      <title>SWE Internship at InnovateTech</title>
      <link>https://example.com/posts/1</link>
      <description>We are looking for a talented SWE intern to join our dynamic team. Apply by 2026-09-30.</description>
      <pubDate>Mon, 20 Jul 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Data Science Internship</title>
      <link>https://example.com/posts/2</link>
      <description>Hiring interns for a 3-month paid data science program. Python required.</description>
      <pubDate>Sat, 18 Jul 2026 14:30:00 GMT</pubDate>
    </item>
    <item>
      <title>Third Posting</title>
      <link>https://example.com/posts/3</link>
      <description>Another internship posting used only to exercise the limit.</description>
    </item>
  </channel>
</rss>`

func TestFetchFeedItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeedXML)
	}))
	defer server.Close()

	items, err := feeder.FetchFeedItems(server.URL, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "SWE Internship at InnovateTech", items[0].Title)
	assert.Equal(t, "https://example.com/posts/1", items[0].Link)
	assert.Contains(t, items[0].Content, "talented SWE intern")
	assert.False(t, items[0].PublishedAt.IsZero())
}

func TestFetchFeedItems_Limit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testFeedXML)
	}))
	defer server.Close()

	items, err := feeder.FetchFeedItems(server.URL, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestFetchFeedItems_BadFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not a feed at all")
	}))
	defer server.Close()

	_, err := feeder.FetchFeedItems(server.URL, 0)
	assert.Error(t, err)
}
