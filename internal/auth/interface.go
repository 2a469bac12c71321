package auth

import "context"

// UseCase issues API tokens in exchange for the shared application password.
type UseCase interface {
	GenerateToken(ctx context.Context, input GenerateTokenInput) (TokenOutput, error)
}
