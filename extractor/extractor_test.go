package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"internship-alert/models"
)

func TestDecodeResult(t *testing.T) {
	r, err := decodeResult(`{"title":"SWE Intern","company":"InnovateTech","deadline":"2026-03-15","requirements":"Go, React"}`)
	assert.NoError(t, err)
	assert.Equal(t, "SWE Intern", r.Title)
	assert.Equal(t, "InnovateTech", r.Company)
	assert.Equal(t, "2026-03-15", r.Deadline)
	assert.Equal(t, "Go, React", r.Requirements)
}

func TestDecodeResult_MissingFieldsAreEmpty(t *testing.T) {
	r, err := decodeResult(`{"title":"Intern","company":"Acme"}`)
	assert.NoError(t, err)
	assert.Empty(t, r.Deadline)
	assert.Empty(t, r.Requirements)
}

func TestDecodeResult_RejectsNonJSON(t *testing.T) {
	_, err := decodeResult("Sure! Here are the details you asked for.")
	assert.Error(t, err)
}

func TestDecodeResult_RejectsMarkdownFence(t *testing.T) {
	_, err := decodeResult("```json\n{\"title\":\"Intern\"}\n```")
	assert.Error(t, err)
}

func TestBuildPrompt_EmbedsInputsVerbatim(t *testing.T) {
	content := "We are hiring a data science intern. Apply by Friday!"
	prompt := buildPrompt(models.PlatformLinkedIn, content)
	assert.Contains(t, prompt, "Platform Source: LinkedIn")
	assert.Contains(t, prompt, content)
}
