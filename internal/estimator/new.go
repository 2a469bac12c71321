// Package estimator asks a language model to rate a task by its title.
package estimator

import (
	"context"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/pkg/log"
	"task-tracker/pkg/yandexgpt"
)

// Completer is the subset of the LLM client the estimator needs.
type Completer interface {
	Complete(ctx context.Context, messages []yandexgpt.Message) (*yandexgpt.Result, error)
}

// Estimator turns a task title into suggested ratings.
type Estimator struct {
	llm Completer
	l   log.Logger
}

var _ task.Estimator = (*Estimator)(nil)

// New creates a new Estimator.
func New(llm Completer, l log.Logger) *Estimator {
	return &Estimator{
		llm: llm,
		l:   l,
	}
}

// suggestion mirrors the JSON the model is asked to produce. Pointers tell a
// missing field apart from an explicit value.
type suggestion struct {
	Importance       *int `json:"importance"`
	Urgency          *int `json:"urgency"`
	PersonalInterest *int `json:"personalInterest"`
	ExecutionTime    *int `json:"executionTime"`
	Complexity       *int `json:"complexity"`
	Concentration    *int `json:"concentration"`
}

func (s suggestion) ratings() model.Ratings {
	r := model.DefaultRatings()
	pick := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	pick(&r.Importance, s.Importance)
	pick(&r.Urgency, s.Urgency)
	pick(&r.PersonalInterest, s.PersonalInterest)
	pick(&r.ExecutionTime, s.ExecutionTime)
	pick(&r.Complexity, s.Complexity)
	pick(&r.Concentration, s.Concentration)
	return r
}
