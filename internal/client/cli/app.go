package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sporttogether/internal/client/client"
	"github.com/dmitrijs2005/sporttogether/internal/client/config"
	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/pages"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/transport"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// controller is the page surface the CLI drives; *pages.Controller
// implements it.
type controller interface {
	Login(ctx context.Context, f *form.Form) error
	Register(ctx context.Context, f *form.Form) error
	MyGames(ctx context.Context) error
	LocalGames(ctx context.Context) error
	EditGame(ctx context.Context, gameID string) (*form.Form, error)
	SaveGame(ctx context.Context, f *form.Form) error
	CreateEvent(ctx context.Context, f *form.Form) error
	JoinGame(ctx context.Context, gameID string) error
	LeaveGame(ctx context.Context, gameID string) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Document() *view.Document
}

type sessionLoader interface {
	Load(ctx context.Context) (*session.UserSession, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	pages  controller
	cache  sessionLoader
	pinger pinger
	logger logging.Logger
	reader *bufio.Reader
	db     *sql.DB

	mu   sync.Mutex
	mode Mode
	page string
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	cache := session.NewCache(db, logger)
	tr := transport.NewHTTPTransport(c.ServerURL, logger,
		transport.WithTimeout(c.RequestTimeout),
		transport.WithTokenSource(cache.Token))
	apiClient := client.NewHTTPClient(tr, logger)

	a := &App{
		config: c,
		cache:  cache,
		pinger: apiClient,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		db:     db,
	}
	a.pages = pages.NewController(pages.Deps{
		Client:    apiClient,
		Cache:     cache,
		Renderer:  view.NewRenderer(view.Policy{IconBaseURL: c.IconBaseURL}),
		Document:  view.DefaultDocument(),
		Schemas:   form.DefaultSchemas(),
		Alerter:   pages.AlertFunc(a.alert),
		Navigator: pages.NavigateFunc(a.navigate),
		Logger:    logger,
	})
	return a, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) alert(msg string) {
	printlnFn("!", msg)
}

func (a *App) navigate(path string) {
	a.mu.Lock()
	a.page = path
	a.mu.Unlock()
}

func (a *App) currentPage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, err := a.cache.Load(context.Background())
	return err == nil
}

// StartOnlineStatusWatcher pings the server every interval and keeps the
// connectivity mode up to date until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	timeout := 3 * time.Second
	if a.config != nil && a.config.RequestTimeout > 0 {
		timeout = a.config.RequestTimeout
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	err := a.pinger.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}
