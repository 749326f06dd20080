package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceRoundTrip(t *testing.T) {
	svc := NewSessionService(NewCacheService(600, 600))
	ctx := context.Background()

	s, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.IsLoggedIn())

	s.SignIn("yvonne")
	require.NoError(t, svc.SaveSession(ctx, s))

	got, err := svc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsLoggedIn())
	assert.Equal(t, "yvonne", got.Username)

	svc.DeleteSession(ctx, s.ID)
	_, err = svc.GetSession(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionTokenSigner(t *testing.T) {
	signer := NewSessionTokenSigner([]byte("test-secret"))

	token, err := signer.Sign("session-1")
	require.NoError(t, err)

	id, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)

	other := NewSessionTokenSigner([]byte("other-secret"))
	_, err = other.Parse(token)
	assert.Error(t, err)

	_, err = signer.Parse("not-a-token")
	assert.Error(t, err)
}

func TestGetAsConvertsGenericValues(t *testing.T) {
	c := NewCacheService(600, 600)
	type point struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	// Redis returns decoded JSON maps rather than the stored type.
	c.Set("p", map[string]interface{}{"lat": 1.5, "lng": 2.5}, 0)
	p, ok := GetAs[point](c, "p")
	require.True(t, ok)
	assert.Equal(t, point{Lat: 1.5, Lng: 2.5}, p)

	c.Set("direct", point{Lat: 3}, 0)
	p, ok = GetAs[point](c, "direct")
	require.True(t, ok)
	assert.Equal(t, 3.0, p.Lat)

	_, ok = GetAs[point](c, "missing")
	assert.False(t, ok)
}

func TestGetOrSetLoadsOnce(t *testing.T) {
	c := NewDurableCacheService()
	calls := 0
	loader := func() (any, error) {
		calls++
		return "value", nil
	}

	v, err := c.GetOrSet("k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = c.GetOrSet("k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrSet("broken", time.Minute, func() (any, error) { return nil, errors.New("down") })
	assert.Error(t, err)
	_, found := c.Get("broken")
	assert.False(t, found, "errors are not cached")
}
