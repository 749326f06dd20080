package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/view"
)

type countingLoginRecorder map[string]int

func (r countingLoginRecorder) LoginAttempted(outcome string) { r[outcome]++ }

func newAuthFixture(t *testing.T) (*AuthService, *common.SessionService, countingLoginRecorder) {
	t.Helper()
	sessions := common.NewSessionService(common.NewDurableCacheService())
	recorder := countingLoginRecorder{}
	return NewAuthService(sessions, recorder), sessions, recorder
}

func TestLoginSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, sessions, recorder := newAuthFixture(t)

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Login(ctx, session, " Yvonne ", "neihu"))
	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, "yvonne", session.Username)
	assert.Equal(t, 1, recorder["success"])

	stored, err := sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "yvonne", stored.Username)
}

func TestLoginIssuesFreshSessionID(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newAuthFixture(t)

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)
	anonymousID := session.ID
	session.View.SelectTab(view.TabBooking)

	require.NoError(t, svc.Login(ctx, session, "albert", "neihu"))
	assert.NotEqual(t, anonymousID, session.ID)

	_, err = sessions.GetSession(ctx, anonymousID)
	assert.ErrorIs(t, err, common.ErrSessionNotFound, "pre-login id no longer resolves")

	stored, err := sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsLoggedIn())
	assert.Equal(t, view.TabBooking, stored.View.Tab, "view carries over")
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, sessions, recorder := newAuthFixture(t)

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)
	before := *session

	for _, creds := range [][2]string{
		{"yvonne", "wrong"},
		{"mallory", "neihu"},
		{"", ""},
	} {
		err := svc.Login(ctx, session, creds[0], creds[1])
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}

	assert.Equal(t, before, *session)
	assert.False(t, session.IsLoggedIn())
	assert.Equal(t, 3, recorder["failure"])
}

func TestLogoutKeepsViewState(t *testing.T) {
	ctx := context.Background()
	svc, sessions, _ := newAuthFixture(t)

	session, err := sessions.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Login(ctx, session, "albert", "neihu"))
	session.View.SelectTab(view.TabChecklist)

	require.NoError(t, svc.Logout(ctx, session))
	assert.False(t, session.IsLoggedIn())

	stored, err := sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsLoggedIn())
	assert.Equal(t, view.TabChecklist, stored.View.Tab)
}
