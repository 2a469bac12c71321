package estimator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"task-tracker/internal/model"
	"task-tracker/pkg/yandexgpt"
)

// Estimate asks the model to rate title. It returns nil ratings without an
// error when the model answers with something that is not a rating object.
// Fields the model omits default to the mid-scale value; clamping is left
// to the caller.
func (e *Estimator) Estimate(ctx context.Context, title string) (*model.Ratings, error) {
	res, err := e.llm.Complete(ctx, []yandexgpt.Message{
		{Role: yandexgpt.RoleSystem, Text: PromptSystem},
		{Role: yandexgpt.RoleUser, Text: title},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", LogPrefixEstimate, ErrMsgLLMCallFailed, err)
	}

	raw, ok := extractObject(res.Text)
	if !ok {
		e.l.Warnf(ctx, "%s: %s: %q", LogPrefixEstimate, ErrMsgNoJSONObject, res.Text)
		return nil, nil
	}

	var s suggestion
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixEstimate, ErrMsgJSONParseFailed, err)
		return nil, nil
	}

	r := s.ratings()
	e.l.Infof(ctx, "%s: estimated %q as %+v", LogPrefixEstimate, title, r)
	return &r, nil
}

// typographic quotes occasionally emitted instead of ASCII ones
var quoteReplacer = strings.NewReplacer("“", `"`, "”", `"`, "„", `"`, "«", `"`, "»", `"`)

// extractObject returns the text between the first '{' and the last '}',
// which also drops any markdown fence around the JSON.
func extractObject(text string) (string, bool) {
	text = quoteReplacer.Replace(strings.TrimSpace(text))
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
