package dto

import "time"

// SubmitInternshipRequest is the submission boundary: a declared platform
// plus the raw post text. Validation happens in the service so the rules are
// shared with the import paths.
type SubmitInternshipRequest struct {
	Platform    string `json:"platform" example:"LinkedIn"`
	PostContent string `json:"post_content" example:"We are looking for a talented SWE intern..."`
}

// ImportFeedRequest pulls postings from an RSS/Atom feed.
type ImportFeedRequest struct {
	Platform string `json:"platform" example:"YouTube"`
	FeedURL  string `json:"feed_url" example:"https://www.youtube.com/feeds/videos.xml?channel_id=..."`
	Limit    int    `json:"limit" example:"10"`
}

// ImportURLRequest fetches a single post page and submits its readable text.
// Rendered switches to headless Chrome for client-rendered platforms.
type ImportURLRequest struct {
	Platform string `json:"platform" example:"Instagram"`
	URL      string `json:"url" example:"https://example.com/posts/123"`
	Rendered bool   `json:"rendered" example:"false"`
}

// DeadlineBadge is the display hint for a record's deadline.
// Severity is one of: expired, urgent (<=3 days), soon (<=14 days), normal,
// raw (deadline did not parse as a date).
type DeadlineBadge struct {
	Text     string `json:"text" example:"4d left"`
	Severity string `json:"severity" example:"urgent"`
}

// InternshipDTO exposes one record plus display-only derived fields.
type InternshipDTO struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Company       string        `json:"company"`
	Deadline      string        `json:"deadline"`
	DeadlineBadge DeadlineBadge `json:"deadline_badge"`
	Requirements  string        `json:"requirements"`
	Platform      string        `json:"platform"`
	PostContent   string        `json:"post_content"`
	ThumbnailURL  string        `json:"thumbnail_url,omitempty"`
	IsSaved       bool          `json:"is_saved"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ToggleSavedResponseDTO reports the new saved state after a toggle.
type ToggleSavedResponseDTO struct {
	ID      string `json:"id"`
	IsSaved bool   `json:"is_saved"`
	Message string `json:"message" example:"Internship Saved"`
}

// ImportResultDTO summarizes a bulk import.
type ImportResultDTO struct {
	Submitted int             `json:"submitted"`
	Skipped   int             `json:"skipped"`
	Errors    []string        `json:"errors,omitempty"`
	Records   []InternshipDTO `json:"records"`
}
