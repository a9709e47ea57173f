// Package provider implements the embedding provider adapter over the
// OpenAI-compatible embeddings API.
package provider

import (
	"fmt"
)

// ProviderError represents a failed embedding provider call: network
// failure, auth rejection, timeout, or a malformed payload.
type ProviderError struct {
	operation  string
	statusCode int
	message    string
	cause      error
}

// NewProviderError creates a new ProviderError.
func NewProviderError(operation string, statusCode int, message string, cause error) *ProviderError {
	return &ProviderError{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.statusCode > 0 {
		return fmt.Sprintf("provider error in %s (status %d): %s", e.operation, e.statusCode, e.message)
	}
	return fmt.Sprintf("provider error in %s: %s", e.operation, e.message)
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error { return e.cause }

// Operation returns the operation that failed.
func (e *ProviderError) Operation() string { return e.operation }

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *ProviderError) StatusCode() int { return e.statusCode }

// Message returns the provider error message.
func (e *ProviderError) Message() string { return e.message }

// EmbeddingRequest holds the texts to embed.
type EmbeddingRequest struct {
	texts []string
}

// NewEmbeddingRequest creates a new EmbeddingRequest.
func NewEmbeddingRequest(texts []string) EmbeddingRequest {
	t := make([]string, len(texts))
	copy(t, texts)
	return EmbeddingRequest{texts: t}
}

// Texts returns the texts to embed.
func (r EmbeddingRequest) Texts() []string {
	t := make([]string, len(r.texts))
	copy(t, r.texts)
	return t
}

// Usage holds token accounting reported by the provider.
type Usage struct {
	promptTokens int
	totalTokens  int
}

// NewUsage creates a new Usage.
func NewUsage(promptTokens, totalTokens int) Usage {
	return Usage{promptTokens: promptTokens, totalTokens: totalTokens}
}

// PromptTokens returns the prompt token count.
func (u Usage) PromptTokens() int { return u.promptTokens }

// TotalTokens returns the total token count.
func (u Usage) TotalTokens() int { return u.totalTokens }

// EmbeddingResponse holds the embedding vectors for a request, in input
// order.
type EmbeddingResponse struct {
	embeddings [][]float64
	usage      Usage
}

// NewEmbeddingResponse creates a new EmbeddingResponse.
func NewEmbeddingResponse(embeddings [][]float64, usage Usage) EmbeddingResponse {
	out := make([][]float64, len(embeddings))
	for i, e := range embeddings {
		vec := make([]float64, len(e))
		copy(vec, e)
		out[i] = vec
	}
	return EmbeddingResponse{embeddings: out, usage: usage}
}

// Embeddings returns the embedding vectors.
func (r EmbeddingResponse) Embeddings() [][]float64 {
	out := make([][]float64, len(r.embeddings))
	for i, e := range r.embeddings {
		vec := make([]float64, len(e))
		copy(vec, e)
		out[i] = vec
	}
	return out
}

// Usage returns the token usage.
func (r EmbeddingResponse) Usage() Usage { return r.usage }
