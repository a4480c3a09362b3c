package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sporttogether/internal/client/client"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCache(db, logging.Discard())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"1"}, SplitList("1"))
	assert.Equal(t, []string{"3", "1", "2"}, SplitList("3,1,2"))
}

func TestList_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for _, items := range [][]string{{}, {"G1"}, {"G3", "G1", "G2"}} {
		require.NoError(t, c.SetList(ctx, KeyGamesOwned, items))
		got, err := c.GetList(ctx, KeyGamesOwned)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	}

	require.NoError(t, c.Set(ctx, KeyGamesJoined, ""))
	got, err := c.GetList(ctx, KeyGamesJoined)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	got, err = c.GetList(ctx, KeyOrphanedGames)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestStoreLogin_WritesEveryField(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	err := c.StoreLogin(ctx, map[string]any{
		"user_id":       "7",
		"first_name":    "Ann",
		"games_owned":   "1,2",
		"games_joined":  "",
		"session_token": "tok",
	})
	require.NoError(t, err)

	v, ok, err := c.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", v)

	owned, err := c.GetList(ctx, KeyGamesOwned)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, owned)

	joined, err := c.GetList(ctx, KeyGamesJoined)
	require.NoError(t, err)
	assert.Equal(t, []string{}, joined)

	assert.Equal(t, "tok", c.Token(ctx))
}

func TestStoreLogin_ReplacesPreviousUser(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.StoreLogin(ctx, map[string]any{
		"user_id":        "A",
		"university":     "Princeton",
		"session_token":  "tokA",
		"orphaned_games": "G9",
	}))
	require.NoError(t, c.StoreLogin(ctx, map[string]any{
		"user_id":      "B",
		"first_name":   "Bo",
		"games_owned":  "",
		"games_joined": "",
	}))

	s, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", s.UserID)
	assert.Equal(t, "Bo", s.FirstName)
	assert.Empty(t, s.University)
	assert.Empty(t, s.SessionToken)
	assert.Equal(t, []string{}, s.OrphanedGames)
	assert.Empty(t, c.Token(ctx))
}

func TestStoreLogin_ConvertsJSONValues(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.StoreLogin(ctx, map[string]any{
		"user_id":        float64(7),
		"first_name":     "Ann",
		"games_owned":    []any{"G1", "G2"},
		"games_joined":   []any{},
		"orphaned_games": nil,
		"soccer":         true,
		"running":        false,
		"frisbee":        "true",
		"university":     "Princeton",
	}))

	s, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &UserSession{
		FirstName:     "Ann",
		UserID:        "7",
		GamesOwned:    []string{"G1", "G2"},
		GamesJoined:   []string{},
		OrphanedGames: []string{},
		University:    "Princeton",
		Soccer:        true,
		Frisbee:       true,
	}, s)
}

func TestLoad_NoSession(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Load(context.Background())
	assert.True(t, errors.Is(err, ErrNoSession))
}

func TestClear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.StoreLogin(ctx, map[string]any{"user_id": "7", "session_token": "tok"}))
	require.NoError(t, c.Clear(ctx))

	_, err := c.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, c.Token(ctx))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{true, "true"},
		{float64(12), "12"},
		{1.5, "1.5"},
		{[]string{"a", "b"}, "a,b"},
		{[]any{"a", float64(2)}, "a,2"},
		{map[string]any{"k": "v"}, `{"k":"v"}`},
	}
	for _, tt := range tests {
		got, err := stringify(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
