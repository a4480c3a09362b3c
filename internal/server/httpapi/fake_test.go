package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/dmitrijs2005/sporttogether/internal/server/services"
	"github.com/stretchr/testify/require"
)

const validToken = "token-7"

type fakeUsers struct {
	registered  []services.Registration
	registerID  string
	registerErr error

	session  *services.Session
	loginErr error
	creds    [2]string

	tokenErr error

	deleted   string
	deleteErr error
}

func (f *fakeUsers) Register(ctx context.Context, r services.Registration) (string, error) {
	f.registered = append(f.registered, r)
	return f.registerID, f.registerErr
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*services.Session, error) {
	f.creds = [2]string{email, password}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.deleted = id
	return f.deleteErr
}

func (f *fakeUsers) UserIDFromToken(token string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	if token != validToken {
		return "", common.ErrInvalidToken
	}
	return "7", nil
}

type fakeGames struct {
	userGames *services.UserGames
	byIDs     []models.Game
	askedIDs  []string
	search    []models.Game
	searchArg [2]string

	createdBy string
	created   services.NewGame
	createID  string

	updatedBy string
	update    services.GameUpdate
	updated   *models.Game

	joined [2]string
	left   [2]string

	err error
}

func (f *fakeGames) ReadForUser(ctx context.Context, userID string) (*services.UserGames, error) {
	return f.userGames, f.err
}

func (f *fakeGames) ReadByIDs(ctx context.Context, ids []string) ([]models.Game, error) {
	f.askedIDs = ids
	return f.byIDs, f.err
}

func (f *fakeGames) Search(ctx context.Context, location, sport string) ([]models.Game, error) {
	f.searchArg = [2]string{location, sport}
	return f.search, f.err
}

func (f *fakeGames) Create(ctx context.Context, ownerID string, g services.NewGame) (string, error) {
	f.createdBy, f.created = ownerID, g
	return f.createID, f.err
}

func (f *fakeGames) Update(ctx context.Context, userID string, u services.GameUpdate) (*models.Game, error) {
	f.updatedBy, f.update = userID, u
	return f.updated, f.err
}

func (f *fakeGames) Join(ctx context.Context, gameID, userID string) error {
	f.joined = [2]string{gameID, userID}
	return f.err
}

func (f *fakeGames) Withdraw(ctx context.Context, gameID, userID string) error {
	f.left = [2]string{gameID, userID}
	return f.err
}

type fakeIcons struct {
	url string
	err error
}

func (f *fakeIcons) IconURL(ctx context.Context, sport string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if !common.IsSupportedSport(sport) {
		return "", common.ErrorNotFound
	}
	return f.url + sport, nil
}

type harness struct {
	users  *fakeUsers
	games  *fakeGames
	icons  *fakeIcons
	server *httptest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		users: &fakeUsers{},
		games: &fakeGames{},
		icons: &fakeIcons{url: "https://s3.example/static/img/"},
	}
	handler := NewHandler(h.users, h.games, h.icons, logging.Discard())
	h.server = httptest.NewServer(NewRouter(handler, []string{"https://campus.example"}))
	t.Cleanup(h.server.Close)
	return h
}

func (h *harness) post(t *testing.T, path, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, h.server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.SessionTokenHeaderName, token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
