package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"google.golang.org/genai"

	"internship-alert/config"
	"internship-alert/models"
)

// Result holds the four structured fields extracted from a posting.
// Deadline stays a raw string; whatever the model produced is kept verbatim
// and parsed (or not) downstream.
type Result struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Deadline     string `json:"deadline"`
	Requirements string `json:"requirements"`
}

// RequestLog captures one LLM call for auditing.
type RequestLog struct {
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Extractor converts a raw posting into structured internship fields.
// It is an interface so a deterministic stub can stand in during tests.
// A single attempt is made per call; failure is total, no partial fields.
type Extractor interface {
	Extract(ctx context.Context, platform models.Platform, postContent string) (*Result, *RequestLog, error)
}

const SYSTEM_INSTRUCTION = `
You are an AI assistant designed to extract internship details from online postings.
Given the platform source and the content of the internship posting, extract the following information.
The response MUST be a valid JSON object with four keys:

1. title: The title of the internship.
2. company: The name of the company offering the internship.
3. deadline: The application deadline for the internship. Prefer an ISO-8601 date
   (e.g., "2026-03-15") when the posting states one; otherwise return the deadline
   text as written.
4. requirements: The requirements for the internship.

Additional constraints:
- If a piece of information is missing, return an empty string for that key. Do not guess.
- You MUST NOT wrap the JSON output in a markdown code block (e.g., ` + "```json ... ```" + `).
- The response should contain ONLY the raw JSON string.
`

// GeminiExtractor implements Extractor on top of the Gemini API.
type GeminiExtractor struct {
	modelName string
}

func NewGeminiExtractor(cfg config.AppConfig) *GeminiExtractor {
	return &GeminiExtractor{modelName: cfg.GeminiModel}
}

func (e *GeminiExtractor) Extract(ctx context.Context, platform models.Platform, postContent string) (*Result, *RequestLog, error) {
	startTime := time.Now()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, nil, err
	}

	prompt := buildPrompt(platform, postContent)

	result, err := client.Models.GenerateContent(
		ctx,
		e.modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return nil, nil, err
	}

	extracted, err := decodeResult(result.Text())
	if err != nil {
		return nil, nil, err
	}

	reqLog := &RequestLog{
		Prompt:       fmt.Sprintf("%s\n\n%s", SYSTEM_INSTRUCTION, prompt),
		Response:     result.Text(),
		LatencyMs:    time.Since(startTime).Milliseconds(),
		ModelName:    e.modelName,
		ModelVersion: result.ModelVersion,
		GeneratedAt:  time.Now(),
	}
	if result.UsageMetadata != nil {
		reqLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	return extracted, reqLog, nil
}

// buildPrompt embeds both inputs verbatim, matching the declared input schema.
func buildPrompt(platform models.Platform, postContent string) string {
	return fmt.Sprintf("Platform Source: %s\nPost Content: %s", platform, postContent)
}

// decodeResult coerces the model response into the four-field shape.
// Anything that does not unmarshal as a JSON object is a total failure.
func decodeResult(text string) (*Result, error) {
	var r Result
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return nil, fmt.Errorf("failed to decode extraction response: %w", err)
	}
	return &r, nil
}
