package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
)

// Login submits the login form and, on success, caches the session and
// navigates home.
func (c *Controller) Login(ctx context.Context, f *form.Form) error {
	return c.do(ctx, "login", func() error {
		payload, err := form.Collect(f, c.schemas.Lookup(form.LoginForm))
		if err != nil {
			return err
		}
		fields, err := c.client.Login(ctx, payload)
		if err != nil {
			return err
		}
		if err := c.cache.StoreLogin(ctx, fields); err != nil {
			return err
		}
		if name, ok := fields[session.KeyFirstName].(string); ok {
			if err := c.renderer.RenderNavBar(c.doc, name); err != nil {
				return err
			}
		}
		c.logger.Info(ctx, "logged in", "user_id", fmt.Sprint(fields[session.KeyUserID]))
		c.nav.Navigate(HomePath)
		return nil
	})
}

// Register submits the registration form and alerts the server's answer.
func (c *Controller) Register(ctx context.Context, f *form.Form) error {
	return c.do(ctx, "register", func() error {
		payload, err := form.Collect(f, c.schemas.Lookup(form.RegistrationForm))
		if err != nil {
			return err
		}
		msg, err := c.client.Register(ctx, payload)
		if err != nil {
			return err
		}
		c.alerter.Alert(msg)
		return nil
	})
}

// Logout forgets the session and clears the page.
func (c *Controller) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", func() error {
		return c.endSession(ctx)
	})
}

// DeleteAccount deletes the logged-in user's account on the server, then
// logs out. A refused deletion keeps the session.
func (c *Controller) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, "delete_account", func() error {
		s, err := c.cache.Load(ctx)
		if err != nil {
			return err
		}
		msg, err := c.client.DeleteAccount(ctx, s.UserID)
		if err != nil {
			return err
		}
		if err := c.endSession(ctx); err != nil {
			return err
		}
		if msg != "" {
			c.alerter.Alert(msg)
		}
		return nil
	})
}

func (c *Controller) endSession(ctx context.Context) error {
	if err := c.cache.Clear(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.editing = nil
	c.mu.Unlock()
	c.doc.Reset()
	c.doc.Hide(view.NavBar)
	c.nav.Navigate(IndexPath)
	return nil
}
