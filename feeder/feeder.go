package feeder

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedItem is one posting pulled from an RSS/Atom feed. YouTube and Telegram
// channels expose feeds, which is how postings get scraped in bulk.
type FeedItem struct {
	Title       string
	Link        string
	Content     string
	PublishedAt time.Time
}

// FetchFeedItems fetches and parses the feed at feedURL.
// If limit is greater than 0, it returns only the first limit items.
func FetchFeedItems(feedURL string, limit int) ([]FeedItem, error) {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // some feed hosts serve stale certs
		},
	}

	fp := gofeed.NewParser()
	fp.Client = httpClient

	feed, err := fp.ParseURL(feedURL)
	if err != nil {
		return nil, err
	}

	var items []FeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}

		items = append(items, FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Content:     content,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
