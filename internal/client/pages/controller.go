package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/client/client"
	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
)

const (
	HomePath  = "/home/"
	IndexPath = "/"
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// Navigator switches the visible page.
type Navigator interface {
	Navigate(path string)
}

type NavigateFunc func(path string)

func (f NavigateFunc) Navigate(path string) { f(path) }

// SessionStore is the part of session.Cache the controllers use.
type SessionStore interface {
	StoreLogin(ctx context.Context, fields map[string]any) error
	Load(ctx context.Context) (*session.UserSession, error)
	SetList(ctx context.Context, key string, items []string) error
	Clear(ctx context.Context) error
}

type Controller struct {
	client   client.Client
	cache    SessionStore
	renderer *view.Renderer
	doc      *view.Document
	schemas  form.Schemas
	alerter  Alerter
	nav      Navigator
	logger   logging.Logger

	guard guard

	mu      sync.Mutex
	editing *api.GameRecord
}

type Deps struct {
	Client    client.Client
	Cache     SessionStore
	Renderer  *view.Renderer
	Document  *view.Document
	Schemas   form.Schemas
	Alerter   Alerter
	Navigator Navigator
	Logger    logging.Logger
}

func NewController(d Deps) *Controller {
	c := &Controller{
		client:   d.Client,
		cache:    d.Cache,
		renderer: d.Renderer,
		doc:      d.Document,
		schemas:  d.Schemas,
		alerter:  d.Alerter,
		nav:      d.Navigator,
		logger:   d.Logger,
	}
	if c.renderer == nil {
		c.renderer = view.NewRenderer(view.DefaultPolicy())
	}
	if c.doc == nil {
		c.doc = view.DefaultDocument()
	}
	if c.schemas == nil {
		c.schemas = form.DefaultSchemas()
	}
	if c.alerter == nil {
		c.alerter = AlertFunc(func(string) {})
	}
	if c.nav == nil {
		c.nav = NavigateFunc(func(string) {})
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	c.logger = c.logger.With("module", "pages")
	return c
}

func (c *Controller) Document() *view.Document { return c.doc }

// do runs one guarded action and reports its failure.
func (c *Controller) do(ctx context.Context, action string, fn func() error) error {
	err := c.guard.run(action, fn)
	if err == nil || errors.Is(err, ErrInFlight) {
		return err
	}
	c.logger.Warn(ctx, "action failed", "action", action, "error", err)
	c.alerter.Alert(alertText(err))
	return err
}
