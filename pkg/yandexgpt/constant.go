package yandexgpt

import "time"

const (
	// DefaultCompletionURL is the synchronous text completion endpoint.
	DefaultCompletionURL = "https://llm.api.cloud.yandex.net/foundationModels/v1/completion"

	// DefaultIAMURL exchanges an OAuth token for a short-lived IAM token.
	DefaultIAMURL = "https://iam.api.cloud.yandex.net/iam/v1/tokens"

	// DefaultModel is the default foundation model.
	DefaultModel = "yandexgpt-lite"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// tokenRefreshMargin renews the IAM token this long before it expires.
	tokenRefreshMargin = time.Minute
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
