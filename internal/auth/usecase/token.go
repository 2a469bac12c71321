package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"

	"task-tracker/internal/auth"
	"task-tracker/pkg/scope"
)

// GenerateToken compares the password in constant time and signs a token for
// the default subject.
func (uc *implUseCase) GenerateToken(ctx context.Context, input auth.GenerateTokenInput) (auth.TokenOutput, error) {
	if uc.appPassword == "" ||
		subtle.ConstantTimeCompare([]byte(input.Password), []byte(uc.appPassword)) != 1 {
		uc.l.Warnf(ctx, "uc.GenerateToken: %v", auth.ErrWrongPassword)
		return auth.TokenOutput{}, auth.ErrWrongPassword
	}

	token, err := uc.jwtManager.CreateToken(scope.DefaultSubject)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateToken jwtManager.CreateToken: %v", err)
		return auth.TokenOutput{}, fmt.Errorf("create token: %w", err)
	}

	return auth.TokenOutput{Token: token}, nil
}
