package pages

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/client/client"
	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/stretchr/testify/require"
)

/*************
 * Fake API client
 *************/

type fakeClient struct {
	calls []string

	lastLogin   any
	loginResp   map[string]any
	loginErr    error
	registerOK  string
	registerErr error

	userGames    *api.UserGames
	userGamesErr error
	byIDs        []api.GameRecord
	search       []api.GameRecord
	lastSearch   string

	lastUpdate any
	updated    *api.GameRecord
	updateErr  error

	lastCreate any
	createID   string
	createErr  error

	joinMsg string
	joinErr error

	leaveMsg string
	leaveErr error

	deleteMsg string
	deleteErr error

	// block, when set, is waited on inside Login.
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeClient) Login(ctx context.Context, creds any) (map[string]any, error) {
	f.calls = append(f.calls, "login")
	f.lastLogin = creds
	if f.block != nil {
		close(f.entered)
		<-f.block
	}
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, fields any) (string, error) {
	f.calls = append(f.calls, "register")
	return f.registerOK, f.registerErr
}

func (f *fakeClient) GamesForUser(ctx context.Context, userID string) (*api.UserGames, error) {
	f.calls = append(f.calls, "games_for_user:"+userID)
	if f.userGamesErr != nil {
		return nil, f.userGamesErr
	}
	if f.userGames == nil {
		return &api.UserGames{}, nil
	}
	return f.userGames, nil
}

func (f *fakeClient) GamesByIDs(ctx context.Context, ids []string) ([]api.GameRecord, error) {
	f.calls = append(f.calls, "games_by_ids")
	return f.byIDs, nil
}

func (f *fakeClient) SearchGames(ctx context.Context, location string) ([]api.GameRecord, error) {
	f.calls = append(f.calls, "search")
	f.lastSearch = location
	return f.search, nil
}

func (f *fakeClient) UpdateGame(ctx context.Context, fields any) (*api.GameRecord, error) {
	f.calls = append(f.calls, "update")
	f.lastUpdate = fields
	return f.updated, f.updateErr
}

func (f *fakeClient) CreateGame(ctx context.Context, fields any) (string, error) {
	f.calls = append(f.calls, "create")
	f.lastCreate = fields
	return f.createID, f.createErr
}

func (f *fakeClient) JoinGame(ctx context.Context, gameID, userID string) (string, error) {
	f.calls = append(f.calls, "join:"+gameID+":"+userID)
	return f.joinMsg, f.joinErr
}

func (f *fakeClient) WithdrawGame(ctx context.Context, gameID, userID string) (string, error) {
	f.calls = append(f.calls, "leave:"+gameID+":"+userID)
	return f.leaveMsg, f.leaveErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context, userID string) (string, error) {
	f.calls = append(f.calls, "delete:"+userID)
	return f.deleteMsg, f.deleteErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return nil }

var _ client.Client = (*fakeClient)(nil)

/*************
 * Harness
 *************/

type harness struct {
	ctrl   *Controller
	client *fakeClient
	cache  *session.Cache
	doc    *view.Document
	alerts []string
	paths  []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := &harness{
		client: &fakeClient{},
		cache:  session.NewCache(db, logging.Discard()),
		doc:    view.DefaultDocument(),
	}
	h.ctrl = NewController(Deps{
		Client:    h.client,
		Cache:     h.cache,
		Renderer:  view.NewRenderer(view.DefaultPolicy()),
		Document:  h.doc,
		Schemas:   form.DefaultSchemas(),
		Alerter:   AlertFunc(func(msg string) { h.alerts = append(h.alerts, msg) }),
		Navigator: NavigateFunc(func(p string) { h.paths = append(h.paths, p) }),
		Logger:    logging.Discard(),
	})
	return h
}

func (h *harness) login(t *testing.T, fields map[string]any) {
	t.Helper()
	require.NoError(t, h.cache.StoreLogin(context.Background(), fields))
}

func loginForm(email, password string) *form.Form {
	return form.New(form.LoginForm,
		&form.Field{Name: "email_address", Value: email},
		&form.Field{Name: "password", Value: password},
		&form.Field{Name: "", Value: "submit"},
	)
}
