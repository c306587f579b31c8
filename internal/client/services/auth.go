// Package services contains the application services of the job-platform
// client. Each service orchestrates the API client and the cache store:
// fetches project server payloads into the store's shape, user actions
// mutate the store optimistically and roll back if the confirming call
// fails.
package services

import (
	"context"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/api"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// AuthService owns the session lifecycle.
//
// Contract:
//   - Login/Register: authenticate or create an account on the server.
//   - Restore: "who am I" probe at startup; restores the session from the
//     cookie if the server still accepts it.
//   - Logout: best-effort server call, then always clears local state.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.UserSummary, error)
	Register(ctx context.Context, name, email, password string, role models.Role) error
	Restore(ctx context.Context) (models.UserSummary, bool)
	Logout(ctx context.Context)
}

type authService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, st *store.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: st, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.UserSummary, error) {
	a.store.LoginStart()

	user, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.store.LoginFailure(err.Error())
		return models.UserSummary{}, err
	}

	a.store.LoginSuccess(user)
	return user, nil
}

func (a *authService) Register(ctx context.Context, name, email, password string, role models.Role) error {
	return a.client.Register(ctx, name, email, password, role)
}

func (a *authService) Restore(ctx context.Context) (models.UserSummary, bool) {
	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.log.Info(ctx, "no restorable session", "error", err)
		return models.UserSummary{}, false
	}
	a.store.LoginSuccess(user)
	return user, true
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	a.store.Reset()
}
