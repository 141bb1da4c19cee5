package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = string(openai.SmallEmbedding3)

// OpenAIClient embeds text through the OpenAI embeddings endpoint, or any
// OpenAI-compatible server when a base URL override is given.
type OpenAIClient struct {
	client    *openai.Client
	modelName string
}

// NewOpenAIClient creates a client for the OpenAI embeddings API.
func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		modelName: model,
	}, nil
}

// Embed sends the text to the embeddings endpoint and returns the vector.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("openai client is not initialized")
	}

	req := openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.modelName),
	}

	resp, err := c.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, classifyOpenAIError(err)
	}

	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, errors.New("openai api returned empty embedding")
	}

	return resp.Data[0].Embedding, nil
}

func (c *OpenAIClient) Name() string { return "openai" }

func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		}
	}
	return fmt.Errorf("create embeddings: %w", err)
}
