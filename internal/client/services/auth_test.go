package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/models"
	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

func newAuthService(f *fakeClient) (AuthService, *store.Store) {
	st := store.New()
	return NewAuthService(f, st, logging.NewDefault()), st
}

func TestLogin_SuccessPopulatesSession(t *testing.T) {
	f := &fakeClient{loginUser: models.UserSummary{ID: "u1", Email: "a@b.c", Role: models.RoleCandidate}}
	svc, st := newAuthService(f)

	user, err := svc.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "a@b.c", f.lastLoginEmail)

	got, ok := st.User()
	require.True(t, ok)
	require.Equal(t, models.RoleCandidate, got.Role)
	require.False(t, st.AuthLoading())
	require.Empty(t, st.AuthError())
}

func TestLogin_FailureRecordsErrorAndStaysLoggedOut(t *testing.T) {
	f := &fakeClient{loginErr: errors.New("invalid credentials")}
	svc, st := newAuthService(f)

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	_, ok := st.User()
	require.False(t, ok)
	require.False(t, st.AuthLoading())
	require.Equal(t, "invalid credentials", st.AuthError())
}

func TestLogin_RetryClearsPreviousError(t *testing.T) {
	f := &fakeClient{loginErr: errors.New("invalid credentials")}
	svc, st := newAuthService(f)

	_, _ = svc.Login(context.Background(), "a@b.c", "wrong")
	require.NotEmpty(t, st.AuthError())

	f.loginErr = nil
	f.loginUser = models.UserSummary{ID: "u1", Email: "a@b.c", Role: models.RoleCandidate}
	_, err := svc.Login(context.Background(), "a@b.c", "right")
	require.NoError(t, err)
	require.Empty(t, st.AuthError())
}

func TestRestore_RecoversSessionFromCookie(t *testing.T) {
	f := &fakeClient{currentUser: models.UserSummary{ID: "u1", Email: "a@b.c", Role: models.RoleRecruiter}}
	svc, st := newAuthService(f)

	user, ok := svc.Restore(context.Background())
	require.True(t, ok)
	require.Equal(t, "u1", user.ID)

	got, ok := st.User()
	require.True(t, ok)
	require.Equal(t, models.RoleRecruiter, got.Role)
}

func TestRestore_NoSessionLeavesStoreUntouched(t *testing.T) {
	f := &fakeClient{currentUserErr: errors.New("401")}
	svc, st := newAuthService(f)

	_, ok := svc.Restore(context.Background())
	require.False(t, ok)

	_, ok = st.User()
	require.False(t, ok)
}

func TestLogout_ClearsStateEvenWhenServerFails(t *testing.T) {
	f := &fakeClient{logoutErr: errors.New("503")}
	svc, st := newAuthService(f)
	st.LoginSuccess(models.UserSummary{ID: "u1", Email: "a@b.c", Role: models.RoleCandidate})
	st.AddSavedJob("7")

	svc.Logout(context.Background())

	require.True(t, f.logoutCalled)
	_, ok := st.User()
	require.False(t, ok)
	require.Equal(t, 0, st.SavedJobsCount())
}
