package yandexgpt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var (
	ErrEmptyResponse = errors.New("yandexgpt: empty completion")
	errRetryable     = errors.New("retryable")
)

// Client calls the foundation models completion API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a client whose requests are authorized with IAM tokens.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	plain := &http.Client{Timeout: cfg.Timeout}
	src := NewIAMTokenSource(cfg.IAMURL, cfg.OAuthToken, plain, cfg.Clock)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &oauth2.Transport{Source: src, Base: http.DefaultTransport},
		},
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

func (c *Client) modelURI() string {
	return fmt.Sprintf("gpt://%s/%s", c.cfg.FolderID, strings.TrimPrefix(c.cfg.Model, "/"))
}

// Complete sends messages and returns the first alternative. Transport errors,
// 429 and 5xx responses are retried with a linearly growing delay.
func (c *Client) Complete(ctx context.Context, messages []Message) (*Result, error) {
	body, err := json.Marshal(completionRequest{
		ModelURI: c.modelURI(),
		CompletionOptions: completionOptions{
			Temperature: c.cfg.Temperature,
			MaxTokens:   strconv.Itoa(c.cfg.MaxTokens),
		},
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * c.cfg.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		res, err := c.do(ctx, body)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !errors.Is(err, errRetryable) {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, body []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.CompletionURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-folder-id", c.cfg.FolderID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call completion API: %w: %w", errRetryable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("completion API error %d: %s", resp.StatusCode, string(raw))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: %w", errRetryable, err)
		}
		return nil, err
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(out.Result.Alternatives) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Result{
		Text:         out.Result.Alternatives[0].Message.Text,
		ModelVersion: out.Result.ModelVersion,
		TotalTokens:  out.Result.Usage.TotalTokens,
	}, nil
}
