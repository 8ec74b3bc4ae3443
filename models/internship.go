package models

import (
	"time"
)

// Internship is one tracked internship posting.
// Collection: internships (only when the Mongo archive is enabled)
//
// Title, Company, Deadline and Requirements come from AI extraction and are
// immutable after creation. IsSaved is the only field a user can change.
type Internship struct {
	ID           string    `bson:"_id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Company      string    `bson:"company" json:"company"`
	Deadline     string    `bson:"deadline" json:"deadline"`
	Requirements string    `bson:"requirements" json:"requirements"`
	Platform     Platform  `bson:"platform" json:"platform"`
	PostContent  string    `bson:"post_content" json:"post_content"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	IsSaved      bool      `bson:"is_saved" json:"is_saved"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// ParsedDeadline parses the record's raw deadline string.
func (i Internship) ParsedDeadline() Deadline {
	return ParseDeadline(i.Deadline)
}
