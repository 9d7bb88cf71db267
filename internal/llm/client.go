package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"bizgenius/internal/config"
)

// Chat is the chat-completion surface the services depend on. Keeping it to a
// single method makes it trivial to mock in tests.
type Chat interface {
	// Complete sends the conversation to the model and returns the assistant
	// reply as plain text.
	Complete(ctx context.Context, messages []*schema.Message) (string, error)
}

// Client talks to an OpenAI-compatible chat-completion endpoint. Requests are
// rate limited client-side and retried with exponential backoff on 429s.
type Client struct {
	chatModel model.ChatModel
	limiter   *rate.Limiter
	timeout   time.Duration
}

var _ Chat = (*Client)(nil)

// New builds a Client from configuration. The endpoint, key, and model come
// from LLM_* environment variables via config.Load.
func New(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is required")
	}

	temp := float32(cfg.Temperature)
	maxTokens := cfg.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	return &Client{
		chatModel: chatModel,
		limiter:   limiter,
		timeout:   timeout,
	}, nil
}

const (
	maxRetries = 3
	baseDelay  = 2 * time.Second
)

// Complete runs one chat completion. Rate-limit errors from the backend are
// retried up to maxRetries times with exponential backoff; other errors are
// returned to the caller as-is.
func (c *Client) Complete(ctx context.Context, messages []*schema.Message) (string, error) {
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.chatModel.Generate(callCtx, messages)
		cancel()
		if err != nil {
			if isRateLimited(err) {
				lastErr = err
				if i < maxRetries {
					select {
					case <-time.After(baseDelay * time.Duration(1<<i)):
						continue
					case <-ctx.Done():
						return "", ctx.Err()
					}
				}
			}
			return "", fmt.Errorf("chat completion: %w", err)
		}

		return strings.TrimSpace(resp.Content), nil
	}

	return "", fmt.Errorf("chat completion: %w", lastErr)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "too many requests")
}
