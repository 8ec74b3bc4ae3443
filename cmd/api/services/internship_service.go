package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"internship-alert/cmd/api/dto"
	"internship-alert/internal/logger"
	"internship-alert/collection"
	"internship-alert/eventbus"
	"internship-alert/events"
	"internship-alert/extractor"
	"internship-alert/feeder"
	"internship-alert/models"
	"internship-alert/notify"
	"internship-alert/parser"
	"internship-alert/renderer"
	"internship-alert/repositories"
)

// MinPostContentLength is the minimum post length worth sending to extraction.
const MinPostContentLength = 20

// ExtractionFailedMessage is the single user-facing message for any
// extraction failure. No retry, no partial record.
const ExtractionFailedMessage = "AI processing failed. Please check the post content or try again later."

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("internship not found")

// ErrExtractionFailed wraps any failure of the extraction call.
var ErrExtractionFailed = errors.New(ExtractionFailedMessage)

// ValidationError reports a malformed submission, naming the failing field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InternshipService owns the submission, view, save-toggle and import flows.
// The archive, AI log repository and event bus are optional; nil simply
// disables that concern.
type InternshipService struct {
	extractor extractor.Extractor
	col       *collection.Collection
	notifier  notify.Notifier
	archive   *repositories.InternshipRepository
	aiLogs    *repositories.AILogRepository
	bus       eventbus.EventBus
	topic     string
	feedLimit int
	now       func() time.Time
}

type InternshipServiceOptions struct {
	Extractor extractor.Extractor
	Col       *collection.Collection
	Notifier  notify.Notifier
	Archive   *repositories.InternshipRepository
	AILogs    *repositories.AILogRepository
	Bus       eventbus.EventBus
	Topic     string
	FeedLimit int
}

func NewInternshipService(opts InternshipServiceOptions) *InternshipService {
	feedLimit := opts.FeedLimit
	if feedLimit <= 0 {
		feedLimit = 10
	}
	return &InternshipService{
		extractor: opts.Extractor,
		col:       opts.Col,
		notifier:  opts.Notifier,
		archive:   opts.Archive,
		aiLogs:    opts.AILogs,
		bus:       opts.Bus,
		topic:     opts.Topic,
		feedLimit: feedLimit,
		now:       time.Now,
	}
}

// Submit validates the input, runs extraction and inserts the new record at
// the front of the collection. The collection is untouched unless extraction
// succeeds.
func (s *InternshipService) Submit(ctx context.Context, platformRaw, postContent string) (models.Internship, error) {
	platform, ok := models.ParsePlatform(platformRaw)
	if !ok {
		return models.Internship{}, &ValidationError{
			Field:   "platform",
			Message: "Platform must be one of YouTube, LinkedIn, Telegram, Instagram.",
		}
	}
	if utf8.RuneCountInString(postContent) < MinPostContentLength {
		return models.Internship{}, &ValidationError{
			Field:   "post_content",
			Message: "Post content must be at least 20 characters to extract details.",
		}
	}

	return s.submitValidated(ctx, platform, postContent, "")
}

// submitValidated runs extraction for an already validated submission.
// thumbnailURL is only set by the link import path.
func (s *InternshipService) submitValidated(ctx context.Context, platform models.Platform, postContent, thumbnailURL string) (models.Internship, error) {
	requestedAt := s.now()
	result, reqLog, err := s.extractor.Extract(ctx, platform, postContent)
	s.storeAILog(ctx, platform, requestedAt, reqLog, err)
	if err != nil {
		logger.Log.Errorf("extraction failed platform=%s: %v", platform, err)
		s.notify(ctx, notify.Notification{
			Title:       "Error",
			Description: ExtractionFailedMessage,
			Variant:     notify.VariantDestructive,
		})
		return models.Internship{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	rec := models.Internship{
		ID:           uuid.NewString(),
		Title:        result.Title,
		Company:      result.Company,
		Deadline:     result.Deadline,
		Requirements: result.Requirements,
		Platform:     platform,
		PostContent:  postContent,
		ThumbnailURL: thumbnailURL,
		IsSaved:      false,
		CreatedAt:    s.now(),
	}
	s.col.Add(rec)

	if s.archive != nil {
		if _, err := s.archive.Insert(ctx, rec); err != nil {
			logger.Log.Errorf("failed to archive internship %s: %v", rec.ID, err)
		}
	}

	s.notify(ctx, notify.Notification{
		Title:       "Success!",
		Description: "New internship has been added.",
	})

	s.publish(ctx, events.InternshipAddedEvent{
		BaseEvent:    events.NewBase(events.InternshipAdded),
		InternshipID: rec.ID,
		Platform:     rec.Platform,
		Title:        rec.Title,
		Company:      rec.Company,
		Deadline:     rec.Deadline,
	})

	return rec, nil
}

// ToggleSaved flips the saved flag and notifies the new state.
func (s *InternshipService) ToggleSaved(ctx context.Context, id string) (models.Internship, error) {
	rec, found := s.col.ToggleSaved(id)
	if !found {
		return models.Internship{}, ErrNotFound
	}

	if s.archive != nil {
		if err := s.archive.SetSaved(ctx, id, rec.IsSaved); err != nil {
			logger.Log.Errorf("failed to archive saved flag for %s: %v", id, err)
		}
	}

	title := "Internship Unsaved"
	description := fmt.Sprintf("%q has been removed from your list.", rec.Title)
	eventType := events.InternshipUnsaved
	if rec.IsSaved {
		title = "Internship Saved"
		description = fmt.Sprintf("%q has been saved to your list.", rec.Title)
		eventType = events.InternshipSaved
	}
	s.notify(ctx, notify.Notification{Title: title, Description: description})

	s.publish(ctx, events.InternshipSaveToggledEvent{
		BaseEvent:    events.NewBase(eventType),
		InternshipID: rec.ID,
		Title:        rec.Title,
		IsSaved:      rec.IsSaved,
	})

	return rec, nil
}

// Get returns one record.
func (s *InternshipService) Get(id string) (models.Internship, error) {
	rec, found := s.col.Get(id)
	if !found {
		return models.Internship{}, ErrNotFound
	}
	return rec, nil
}

// ListInput carries the view filters, sort and pagination.
type ListInput struct {
	Scope    string
	Platform string
	Query    string
	Sort     string
	Page     int
	PageSize int
}

// List projects the collection through the composed filters and sort, then
// paginates the result.
func (s *InternshipService) List(in ListInput) (dto.Pagination[dto.InternshipDTO], error) {
	opt := collection.ViewOptions{
		Scope: collection.ScopeAll,
		Query: in.Query,
		Sort:  collection.SortOption(in.Sort),
	}
	if in.Scope == string(collection.ScopeSaved) {
		opt.Scope = collection.ScopeSaved
	}
	if in.Platform != "" && in.Platform != "all" {
		platform, ok := models.ParsePlatform(in.Platform)
		if !ok {
			return dto.Pagination[dto.InternshipDTO]{}, &ValidationError{
				Field:   "platform",
				Message: "Platform must be one of YouTube, LinkedIn, Telegram, Instagram.",
			}
		}
		opt.Platform = platform
	}

	view := s.col.View(opt)

	page := in.Page
	if page <= 0 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	if start > len(view) {
		start = len(view)
	}
	end := start + pageSize
	if end > len(view) {
		end = len(view)
	}

	now := s.now()
	out := make([]dto.InternshipDTO, 0, end-start)
	for _, rec := range view[start:end] {
		out = append(out, mapInternship(rec, now))
	}

	return dto.Pagination[dto.InternshipDTO]{
		Data:     out,
		Page:     page,
		PageSize: pageSize,
		Total:    int64(len(view)),
	}, nil
}

// ImportFeed fetches a feed and submits each item through the normal
// submission path. Items failing validation are skipped, extraction failures
// are collected, and the import keeps going either way.
func (s *InternshipService) ImportFeed(ctx context.Context, platformRaw, feedURL string, limit int) (dto.ImportResultDTO, error) {
	if _, ok := models.ParsePlatform(platformRaw); !ok {
		return dto.ImportResultDTO{}, &ValidationError{
			Field:   "platform",
			Message: "Platform must be one of YouTube, LinkedIn, Telegram, Instagram.",
		}
	}
	if feedURL == "" {
		return dto.ImportResultDTO{}, &ValidationError{Field: "feed_url", Message: "Feed URL is required."}
	}
	if limit <= 0 || limit > s.feedLimit {
		limit = s.feedLimit
	}

	items, err := feeder.FetchFeedItems(feedURL, limit)
	if err != nil {
		return dto.ImportResultDTO{}, fmt.Errorf("failed to fetch feed: %w", err)
	}

	result := dto.ImportResultDTO{Records: []dto.InternshipDTO{}}
	now := s.now()
	for _, item := range items {
		content := item.Content
		if item.Title != "" {
			content = item.Title + "\n" + content
		}
		rec, err := s.Submit(ctx, platformRaw, content)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", item.Link, ExtractionFailedMessage))
			continue
		}
		result.Submitted++
		result.Records = append(result.Records, mapInternship(rec, now))
	}

	return result, nil
}

// ImportURL fetches one post page, extracts its readable text and submits it.
func (s *InternshipService) ImportURL(ctx context.Context, platformRaw, url string, rendered bool) (models.Internship, error) {
	platform, ok := models.ParsePlatform(platformRaw)
	if !ok {
		return models.Internship{}, &ValidationError{
			Field:   "platform",
			Message: "Platform must be one of YouTube, LinkedIn, Telegram, Instagram.",
		}
	}
	if url == "" {
		return models.Internship{}, &ValidationError{Field: "url", Message: "URL is required."}
	}

	var htmlStr string
	var err error
	if rendered {
		htmlStr, err = renderer.RenderHTML(url)
	} else {
		htmlStr, err = renderer.FetchHTML(ctx, url)
	}
	if err != nil {
		return models.Internship{}, fmt.Errorf("failed to fetch post page: %w", err)
	}

	post, err := parser.ParsePost(htmlStr)
	if err != nil {
		return models.Internship{}, fmt.Errorf("failed to parse post page: %w", err)
	}
	if utf8.RuneCountInString(post.PlainText) < MinPostContentLength {
		return models.Internship{}, &ValidationError{
			Field:   "url",
			Message: "The page did not contain enough readable text to extract details.",
		}
	}

	return s.submitValidated(ctx, platform, post.PlainText, post.TopImage)
}

// PublishReminder mirrors a fired deadline reminder onto the event bus.
// Wired as the scanner's OnRemind callback.
func (s *InternshipService) PublishReminder(ctx context.Context, rec models.Internship) {
	s.publish(ctx, events.DeadlineApproachingEvent{
		BaseEvent:    events.NewBase(events.DeadlineApproaching),
		InternshipID: rec.ID,
		Title:        rec.Title,
		Deadline:     rec.Deadline,
	})
}

// RestoreFromArchive replays archived records into the collection, oldest
// first so insertion order matches the original creation order.
func (s *InternshipService) RestoreFromArchive(ctx context.Context) error {
	if s.archive == nil {
		return nil
	}
	recs, err := s.archive.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := len(recs) - 1; i >= 0; i-- {
		s.col.Add(recs[i])
	}
	if len(recs) > 0 {
		logger.Log.Infof("restored %d internships from archive", len(recs))
	}
	return nil
}

func (s *InternshipService) notify(ctx context.Context, n notify.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		logger.Log.Errorf("failed to deliver notification %q: %v", n.Title, err)
	}
}

func (s *InternshipService) publish(ctx context.Context, event interface{}) {
	if s.bus == nil {
		return
	}
	data, eventType, err := events.SerializeEvent(event)
	if err != nil {
		logger.Log.Errorf("failed to serialize event: %v", err)
		return
	}
	evt := eventbus.Event{ID: uuid.NewString(), Payload: data}
	if err := s.bus.Publish(ctx, s.topic, evt); err != nil {
		logger.Log.Errorf("failed to publish %s event: %v", eventType, err)
	}
}

func (s *InternshipService) storeAILog(ctx context.Context, platform models.Platform, requestedAt time.Time, reqLog *extractor.RequestLog, extractErr error) {
	if s.aiLogs == nil {
		return
	}

	entry := models.AILog{
		Platform:    platform,
		RequestedAt: requestedAt,
		CompletedAt: s.now(),
	}
	if reqLog != nil {
		entry.ModelName = reqLog.ModelName
		entry.ModelVersion = reqLog.ModelVersion
		entry.InputTokens = reqLog.TokenUsage.InputTokens
		entry.OutputTokens = reqLog.TokenUsage.OutputTokens
		entry.TotalTokens = reqLog.TokenUsage.TotalTokens
		entry.DurationMs = reqLog.LatencyMs
		entry.InputPrompt = reqLog.Prompt
		entry.OutputResponse = reqLog.Response
	}
	if extractErr != nil {
		msg := extractErr.Error()
		entry.ErrorMessage = &msg
	}

	if _, err := s.aiLogs.Insert(ctx, entry); err != nil {
		logger.Log.Errorf("failed to store ai log: %v", err)
	}
}

// mapInternship converts a record into its public DTO.
func mapInternship(rec models.Internship, now time.Time) dto.InternshipDTO {
	return dto.InternshipDTO{
		ID:            rec.ID,
		Title:         rec.Title,
		Company:       rec.Company,
		Deadline:      rec.Deadline,
		DeadlineBadge: deadlineBadge(rec.ParsedDeadline(), now),
		Requirements:  rec.Requirements,
		Platform:      string(rec.Platform),
		PostContent:   rec.PostContent,
		ThumbnailURL:  rec.ThumbnailURL,
		IsSaved:       rec.IsSaved,
		CreatedAt:     rec.CreatedAt,
	}
}

// deadlineBadge mirrors the card display tiers: expired, <=3 days urgent,
// <=14 days soon, otherwise the date itself. Unparseable deadlines show the
// raw text.
func deadlineBadge(d models.Deadline, now time.Time) dto.DeadlineBadge {
	if !d.Valid {
		return dto.DeadlineBadge{Text: d.Raw, Severity: "raw"}
	}
	if d.ExpiredAt(now) {
		return dto.DeadlineBadge{Text: "Expired", Severity: "expired"}
	}
	daysLeft := int(d.Time.Sub(now).Hours() / 24)
	switch {
	case daysLeft <= 3:
		return dto.DeadlineBadge{Text: fmt.Sprintf("%dd left", daysLeft+1), Severity: "urgent"}
	case daysLeft <= 14:
		return dto.DeadlineBadge{Text: fmt.Sprintf("%dd left", daysLeft+1), Severity: "soon"}
	}
	return dto.DeadlineBadge{Text: d.Time.Format("2006-01-02"), Severity: "normal"}
}
