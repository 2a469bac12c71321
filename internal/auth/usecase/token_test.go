package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-tracker/internal/auth"
	"task-tracker/pkg/log"
	"task-tracker/pkg/scope"
)

type failingManager struct{}

func (failingManager) CreateToken(string) (string, error) { return "", errors.New("sign failed") }
func (failingManager) Verify(string) (scope.Payload, error) {
	return scope.Payload{}, errors.New("not implemented")
}

func TestGenerateToken(t *testing.T) {
	jm, err := scope.New("secret", time.Hour, nil)
	if err != nil {
		t.Fatalf("scope.New() error = %v", err)
	}
	ctx := context.Background()

	t.Run("correct password", func(t *testing.T) {
		uc := New(log.NewNop(), jm, "hunter2")
		out, err := uc.GenerateToken(ctx, auth.GenerateTokenInput{Password: "hunter2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload, err := jm.Verify(out.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if payload.Subject != scope.DefaultSubject {
			t.Errorf("expected subject %q, got %q", scope.DefaultSubject, payload.Subject)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := New(log.NewNop(), jm, "hunter2")
		_, err := uc.GenerateToken(ctx, auth.GenerateTokenInput{Password: "hunter3"})
		if !errors.Is(err, auth.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})

	t.Run("unset password rejects everything", func(t *testing.T) {
		uc := New(log.NewNop(), jm, "")
		_, err := uc.GenerateToken(ctx, auth.GenerateTokenInput{Password: ""})
		if !errors.Is(err, auth.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})

	t.Run("signing failure", func(t *testing.T) {
		uc := New(log.NewNop(), failingManager{}, "hunter2")
		_, err := uc.GenerateToken(ctx, auth.GenerateTokenInput{Password: "hunter2"})
		if err == nil || errors.Is(err, auth.ErrWrongPassword) {
			t.Errorf("expected signing error, got %v", err)
		}
	})
}
