package usecase

import (
	"task-tracker/internal/auth"
	pkgLog "task-tracker/pkg/log"
	"task-tracker/pkg/scope"
)

type implUseCase struct {
	l           pkgLog.Logger
	jwtManager  scope.Manager
	appPassword string
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates the auth UseCase. appPassword is the single shared secret
// clients exchange for a token.
func New(l pkgLog.Logger, jwtManager scope.Manager, appPassword string) *implUseCase {
	return &implUseCase{
		l:           l,
		jwtManager:  jwtManager,
		appPassword: appPassword,
	}
}
