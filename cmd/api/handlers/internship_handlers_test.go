package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-alert/cmd/api/dto"
	"internship-alert/cmd/api/services"
	"internship-alert/collection"
	"internship-alert/extractor"
	"internship-alert/models"
	"internship-alert/notify"
)

type stubExtractor struct {
	result *extractor.Result
	err    error
}

func (s *stubExtractor) Extract(_ context.Context, _ models.Platform, _ string) (*extractor.Result, *extractor.RequestLog, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.result, &extractor.RequestLog{}, nil
}

func newTestRouter(ext extractor.Extractor) (*gin.Engine, *notify.MemoryNotifier) {
	gin.SetMode(gin.TestMode)

	notifier := notify.NewMemoryNotifier(0)
	svc := services.NewInternshipService(services.InternshipServiceOptions{
		Extractor: ext,
		Col:       collection.New(),
		Notifier:  notifier,
	})

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/internships", SubmitInternshipHandler(svc))
	api.GET("/internships", ListInternshipsHandler(svc))
	api.GET("/internships/:id", GetInternshipHandler(svc))
	api.POST("/internships/:id/save", ToggleSavedHandler(svc))
	api.GET("/notifications", ListNotificationsHandler(notifier))
	return r, notifier
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const submitBody = `{"platform":"LinkedIn","post_content":"We are hiring a backend intern for summer 2026."}`

func TestSubmitInternshipHandler_Created(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{
		Title:   "Backend Intern",
		Company: "Acme",
	}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", submitBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var rec models.Internship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Backend Intern", rec.Title)
	assert.Equal(t, models.PlatformLinkedIn, rec.Platform)
}

func TestSubmitInternshipHandler_ValidationFailure(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", `{"platform":"LinkedIn","post_content":"short"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "post_content", resp.Field)
	assert.Equal(t, "Post content must be at least 20 characters to extract details.", resp.Error)
}

func TestSubmitInternshipHandler_ExtractionFailure(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{err: errors.New("model unavailable")})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", submitBody)

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, services.ExtractionFailedMessage, resp.Error)
}

func TestSubmitInternshipHandler_MalformedBody(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", `{not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListInternshipsHandler_ReturnsEnvelope(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{Title: "Intern", Deadline: "2099-01-01"}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", submitBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/internships?sort=newest", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.PaginationInternshipDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Intern", page.Data[0].Title)
	assert.Equal(t, "normal", page.Data[0].DeadlineBadge.Severity)
}

func TestListInternshipsHandler_RejectsBadPlatform(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{}})

	w := doJSON(t, r, http.MethodGet, "/api/v1/internships?platform=Friendster", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleSavedHandler_RoundTrip(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{Title: "Intern"}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", submitBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var rec models.Internship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	w = doJSON(t, r, http.MethodPost, "/api/v1/internships/"+rec.ID+"/save", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ToggleSavedResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsSaved)
	assert.Equal(t, "Internship Saved", resp.Message)

	w = doJSON(t, r, http.MethodPost, "/api/v1/internships/"+rec.ID+"/save", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsSaved)
	assert.Equal(t, "Internship Unsaved", resp.Message)
}

func TestToggleSavedHandler_NotFound(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships/missing/save", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInternshipHandler_NotFound(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{}})

	w := doJSON(t, r, http.MethodGet, "/api/v1/internships/missing", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListNotificationsHandler_NewestFirst(t *testing.T) {
	r, _ := newTestRouter(&stubExtractor{result: &extractor.Result{Title: "Intern"}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/internships", submitBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var rec models.Internship
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	w = doJSON(t, r, http.MethodPost, "/api/v1/internships/"+rec.ID+"/save", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/notifications?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []notify.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	require.Len(t, notifications, 2)
	assert.Equal(t, "Internship Saved", notifications[0].Title)
	assert.Equal(t, "Success!", notifications[1].Title)
}
