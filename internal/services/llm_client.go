package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/careermitra/careermitra-backend/internal/platform/apierr"
	"github.com/careermitra/careermitra-backend/internal/platform/envutil"
	"github.com/careermitra/careermitra-backend/internal/platform/logger"
)

// LLMClient produces free-text completions from an external language model.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type chatCompletionClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewChatCompletionClient targets an OpenAI-compatible /v1/chat/completions
// endpoint, by default a local model server on port 1234. The timeout is the
// hard bound on the whole call; callers fall back rather than retry.
func NewChatCompletionClient(log *logger.Logger) LLMClient {
	baseURL := strings.TrimRight(envutil.Str("CHAT_LLM_BASE_URL", "http://localhost:1234"), "/")
	model := envutil.Str("CHAT_LLM_MODEL", "local-model")
	timeoutSec := envutil.Int("CHAT_LLM_TIMEOUT_SECONDS", 10)
	if timeoutSec <= 0 {
		timeoutSec = 10
	}

	return &chatCompletionClient{
		log:        log.With("service", "ChatCompletionClient"),
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(os.Getenv("CHAT_LLM_API_KEY")),
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *chatCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	body := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.4,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apierr.New(resp.StatusCode, "llm_http_error",
			fmt.Errorf("chat completion http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	content := parsed.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", errors.New("chat completion returned empty content")
	}
	return content, nil
}
