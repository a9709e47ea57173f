package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/agenticlabs/semsearch/domain/search"
)

// Defaults for the OpenAI embedding provider.
const (
	DefaultEmbeddingModel = "text-embedding-3-small"
	// DefaultTimeout bounds each provider call.
	DefaultTimeout = 8 * time.Second
	// DefaultMaxInputTokens matches the documented input limit of the
	// text-embedding-3 models.
	DefaultMaxInputTokens = 8191
)

// OpenAIConfig holds configuration for the OpenAI embedding provider.
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	EmbeddingModel string
	Timeout        time.Duration
	MaxInputTokens int
	// CacheDir, when set, caches embedding responses on disk through
	// CachingTransport.
	CacheDir string
}

// OpenAIProvider generates embeddings through an OpenAI-compatible API.
// Each Embed call is a single attempt: no internal retries, so callers stay
// in control of degrade-versus-retry policy.
type OpenAIProvider struct {
	client         *openai.Client
	embeddingModel string
	maxInputTokens int
	tokenizer      *tiktoken.Tiktoken
}

// NewOpenAIProviderFromConfig creates a provider from configuration.
func NewOpenAIProviderFromConfig(cfg OpenAIConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)

	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.CacheDir != "" {
		httpClient.Transport = NewCachingTransport(cfg.CacheDir, nil)
	}
	clientConfig.HTTPClient = httpClient

	model := cfg.EmbeddingModel
	if model == "" {
		model = DefaultEmbeddingModel
	}

	maxInputTokens := cfg.MaxInputTokens
	if maxInputTokens <= 0 {
		maxInputTokens = DefaultMaxInputTokens
	}

	return &OpenAIProvider{
		client:         openai.NewClientWithConfig(clientConfig),
		embeddingModel: model,
		maxInputTokens: maxInputTokens,
		tokenizer:      tokenizerForModel(model),
	}
}

// tokenizerForModel resolves the tiktoken encoding for a model, falling back
// to cl100k_base for models tiktoken does not know.
func tokenizerForModel(model string) *tiktoken.Tiktoken {
	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tkm, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil
		}
	}
	return tkm
}

// Embed generates embeddings for the given texts in a single API call.
// Inputs longer than the provider's token limit are truncated before being
// sent. A response with the wrong number of vectors is a malformed payload
// and reported as a ProviderError.
func (p *OpenAIProvider) Embed(ctx context.Context, req EmbeddingRequest) (EmbeddingResponse, error) {
	texts := req.Texts()
	if len(texts) == 0 {
		return NewEmbeddingResponse([][]float64{}, NewUsage(0, 0)), nil
	}

	for i, text := range texts {
		texts[i] = p.truncate(text)
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(p.embeddingModel),
		Input: texts,
	})
	if err != nil {
		return EmbeddingResponse{}, p.wrapError("embedding", err)
	}

	if len(resp.Data) != len(texts) {
		return EmbeddingResponse{}, NewProviderError(
			"embedding", 0,
			"response vector count does not match input count", nil,
		)
	}

	embeddings := make([][]float64, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = make([]float64, len(data.Embedding))
		for j, v := range data.Embedding {
			embeddings[i][j] = float64(v)
		}
	}

	usage := NewUsage(resp.Usage.PromptTokens, resp.Usage.TotalTokens)
	return NewEmbeddingResponse(embeddings, usage), nil
}

// truncate trims text to the provider's input token limit. Without a
// tokenizer it falls back to a conservative character bound.
func (p *OpenAIProvider) truncate(text string) string {
	if p.tokenizer == nil {
		// Roughly four characters per token for English text.
		limit := p.maxInputTokens * 4
		if len(text) > limit {
			return text[:limit]
		}
		return text
	}

	ids := p.tokenizer.Encode(text, nil, nil)
	if len(ids) <= p.maxInputTokens {
		return text
	}
	return p.tokenizer.Decode(ids[:p.maxInputTokens])
}

// wrapError wraps an OpenAI client error into a ProviderError.
func (p *OpenAIProvider) wrapError(operation string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return NewProviderError(operation, apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return NewProviderError(operation, reqErr.HTTPStatusCode, reqErr.Error(), err)
	}

	return NewProviderError(operation, 0, err.Error(), err)
}

// Embedder adapts an OpenAIProvider to the domain search.Embedder contract.
type Embedder struct {
	provider *OpenAIProvider
}

// NewEmbedder creates an Embedder backed by the given provider.
func NewEmbedder(p *OpenAIProvider) Embedder {
	return Embedder{provider: p}
}

// Embed implements search.Embedder.
func (e Embedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := e.provider.Embed(ctx, NewEmbeddingRequest(texts))
	if err != nil {
		return nil, err
	}
	return resp.Embeddings(), nil
}

var _ search.Embedder = Embedder{}
