package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
)

// EditForm is the editable form of a game. The sport is shown but not
// submitted.
func EditForm(g api.GameRecord) *form.Form {
	return form.New(form.GameEditForm,
		&form.Field{Name: "type", Value: g.Type, Disabled: true},
		&form.Field{Name: "time", Value: g.Time},
		&form.Field{Name: "date", Value: g.Date},
		&form.Field{Name: "location", Value: g.Location},
	)
}

// EditGame fetches a game and shows its edit form. The returned form is the
// one SaveGame expects.
func (c *Controller) EditGame(ctx context.Context, gameID string) (*form.Form, error) {
	var f *form.Form
	err := c.do(ctx, "edit_game", func() error {
		records, err := c.client.GamesByIDs(ctx, []string{gameID})
		if err != nil {
			return err
		}
		var rec *api.GameRecord
		for i := range records {
			if records[i].GameID == gameID {
				rec = &records[i]
				break
			}
		}
		if rec == nil {
			return fmt.Errorf("game %s not found", gameID)
		}
		if err := c.renderer.RenderEditForm(c.doc, *rec); err != nil {
			return err
		}
		c.mu.Lock()
		c.editing = rec
		c.mu.Unlock()
		f = EditForm(*rec)
		return nil
	})
	return f, err
}

// SaveGame submits the edit form of the game opened by EditGame. When the
// server reports a change the owner's games are re-rendered as a table.
func (c *Controller) SaveGame(ctx context.Context, f *form.Form) error {
	return c.do(ctx, "save_game", func() error {
		c.mu.Lock()
		editing := c.editing
		c.mu.Unlock()
		if editing == nil {
			return ErrNotEditing
		}

		payload, err := form.Collect(f, c.schemas.Lookup(form.GameEditForm))
		if err != nil {
			return err
		}
		payload.Set("game_id", editing.GameID)
		payload.Set("game_owner_id", editing.OwnerID)

		updated, err := c.client.UpdateGame(ctx, payload)
		if err != nil {
			return err
		}

		c.doc.Hide(view.GameEdit)
		c.mu.Lock()
		c.editing = nil
		c.mu.Unlock()
		if updated == nil {
			c.logger.Debug(ctx, "game unchanged", "game_id", editing.GameID)
			return nil
		}
		return c.refreshGames(ctx, editing.OwnerID)
	})
}

// RefreshGames re-renders the games owned by userID as a table.
func (c *Controller) RefreshGames(ctx context.Context, userID string) error {
	return c.do(ctx, "refresh_games", func() error {
		return c.refreshGames(ctx, userID)
	})
}

func (c *Controller) refreshGames(ctx context.Context, userID string) error {
	games, err := c.client.GamesForUser(ctx, userID)
	if err != nil {
		return err
	}
	c.renderer.RenderMessage(c.doc, view.LoggedIn, "These are your games")
	owned := games.GamesOwned
	if s, err := c.cache.Load(ctx); err == nil && s.UserID == userID {
		owned = c.matchByID(ctx, s.GamesOwned, owned)
	}
	if err := c.renderer.RenderTable(c.doc, view.OwnedGames, owned); err != nil {
		return err
	}
	c.doc.Show(view.OwnedGames)
	return nil
}

// CreateEvent submits the event form on behalf of the logged-in user.
func (c *Controller) CreateEvent(ctx context.Context, f *form.Form) error {
	return c.do(ctx, "create_event", func() error {
		payload, err := form.Collect(f, c.schemas.Lookup(form.EventForm))
		if err != nil {
			return err
		}
		s, err := c.cache.Load(ctx)
		if err != nil {
			return err
		}
		payload.Set("user_id", s.UserID)

		gameID, err := c.client.CreateGame(ctx, payload)
		if err != nil {
			return err
		}
		if gameID != "" {
			if err := c.cache.SetList(ctx, session.KeyGamesOwned, append(s.GamesOwned, gameID)); err != nil {
				return err
			}
		}
		f.Reset()
		return c.myGames(ctx)
	})
}
