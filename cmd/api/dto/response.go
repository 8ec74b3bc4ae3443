package dto

// ErrorResponseDTO is the common error response shape.
// Field names the submission field that failed validation, when applicable.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"AI processing failed. Please check the post content or try again later."`
	Field string `json:"field,omitempty" example:"post_content"`
}

// MessageResponseDTO is the common plain message response shape.
type MessageResponseDTO struct {
	Message string `json:"message" example:"ok"`
}
