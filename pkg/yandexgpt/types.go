package yandexgpt

import (
	"errors"
	"time"
)

// Config configures the completion client.
type Config struct {
	CompletionURL string
	IAMURL        string
	FolderID      string
	OAuthToken    string
	Model         string
	Temperature   float64
	MaxTokens     int
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration

	// Clock drives IAM token freshness checks. Defaults to time.Now.
	Clock func() time.Time
}

// Validate checks required fields.
func (c Config) Validate() error {
	if c.FolderID == "" {
		return errors.New("yandexgpt: folder id is required")
	}
	if c.OAuthToken == "" {
		return errors.New("yandexgpt: oauth token is required")
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.CompletionURL == "" {
		c.CompletionURL = DefaultCompletionURL
	}
	if c.IAMURL == "" {
		c.IAMURL = DefaultIAMURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 1
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 500
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// Message is a single chat message.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type completionOptions struct {
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
	MaxTokens   string  `json:"maxTokens"`
}

type completionRequest struct {
	ModelURI          string            `json:"modelUri"`
	CompletionOptions completionOptions `json:"completionOptions"`
	Messages          []Message         `json:"messages"`
}

type completionResponse struct {
	Result struct {
		Alternatives []struct {
			Message Message `json:"message"`
			Status  string  `json:"status"`
		} `json:"alternatives"`
		Usage struct {
			InputTextTokens  string `json:"inputTextTokens"`
			CompletionTokens string `json:"completionTokens"`
			TotalTokens      string `json:"totalTokens"`
		} `json:"usage"`
		ModelVersion string `json:"modelVersion"`
	} `json:"result"`
}

// Result is the first alternative of a completion.
type Result struct {
	Text         string
	ModelVersion string
	TotalTokens  string
}

type iamRequest struct {
	YandexPassportOauthToken string `json:"yandexPassportOauthToken"`
}

type iamResponse struct {
	IAMToken  string    `json:"iamToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}
