package yandexgpt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// cachedToken is the single cache record for the exchanged IAM token.
type cachedToken struct {
	value  string
	expiry time.Time
}

func (t cachedToken) freshAt(now time.Time) bool {
	return t.value != "" && now.Add(tokenRefreshMargin).Before(t.expiry)
}

// IAMTokenSource exchanges an OAuth token for an IAM token and reuses it until
// it is about to expire. It implements oauth2.TokenSource.
type IAMTokenSource struct {
	url        string
	oauthToken string
	httpClient *http.Client
	now        func() time.Time

	mu     sync.Mutex
	cached cachedToken
}

var _ oauth2.TokenSource = (*IAMTokenSource)(nil)

// NewIAMTokenSource creates a token source. httpClient must not itself be
// authorized by this source.
func NewIAMTokenSource(url, oauthToken string, httpClient *http.Client, now func() time.Time) *IAMTokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if now == nil {
		now = time.Now
	}
	return &IAMTokenSource{
		url:        url,
		oauthToken: oauthToken,
		httpClient: httpClient,
		now:        now,
	}
}

// Token returns the cached IAM token, refreshing it when stale.
func (s *IAMTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cached.freshAt(s.now()) {
		fresh, err := s.exchange(context.Background())
		if err != nil {
			return nil, err
		}
		s.cached = fresh
	}

	return &oauth2.Token{
		AccessToken: s.cached.value,
		TokenType:   "Bearer",
		Expiry:      s.cached.expiry,
	}, nil
}

func (s *IAMTokenSource) exchange(ctx context.Context) (cachedToken, error) {
	body, err := json.Marshal(iamRequest{YandexPassportOauthToken: s.oauthToken})
	if err != nil {
		return cachedToken{}, fmt.Errorf("failed to marshal iam request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return cachedToken{}, fmt.Errorf("failed to create iam request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return cachedToken{}, fmt.Errorf("failed to call iam API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return cachedToken{}, fmt.Errorf("iam API error %d: %s", resp.StatusCode, string(raw))
	}

	var out iamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return cachedToken{}, fmt.Errorf("failed to decode iam response: %w", err)
	}
	if out.IAMToken == "" {
		return cachedToken{}, fmt.Errorf("iam API returned an empty token")
	}

	return cachedToken{value: out.IAMToken, expiry: out.ExpiresAt}, nil
}
