package pages

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/view"
)

// MyGames renders the owned and joined games of the logged-in user.
func (c *Controller) MyGames(ctx context.Context) error {
	return c.do(ctx, "my_games", func() error {
		return c.myGames(ctx)
	})
}

func (c *Controller) myGames(ctx context.Context) error {
	s, err := c.cache.Load(ctx)
	if err != nil {
		return err
	}
	games, err := c.client.GamesForUser(ctx, s.UserID)
	if err != nil {
		return err
	}

	owned := c.matchByID(ctx, s.GamesOwned, games.GamesOwned)
	joined := c.matchByID(ctx, s.GamesJoined, games.GamesJoined)

	c.doc.Reset(view.OwnedGames, view.JoinedGames)
	if err := c.renderer.RenderGameList(c.doc, view.OwnedGames, owned); err != nil {
		return err
	}
	if err := c.renderer.RenderGameList(c.doc, view.JoinedGames, joined); err != nil {
		return err
	}
	c.doc.Show(view.OwnedGames)
	c.doc.Show(view.JoinedGames)
	return nil
}

// matchByID orders records by the cached id list. Ids without a record are
// skipped; records the cache does not know follow in server order.
func (c *Controller) matchByID(ctx context.Context, ids []string, records []api.GameRecord) []api.GameRecord {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		if _, dup := byID[r.GameID]; !dup {
			byID[r.GameID] = i
		}
	}

	used := make([]bool, len(records))
	out := make([]api.GameRecord, 0, len(records))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok || used[i] {
			c.logger.Debug(ctx, "cached game not returned", "game_id", id)
			continue
		}
		used[i] = true
		out = append(out, records[i])
	}
	for i, r := range records {
		if !used[i] {
			out = append(out, r)
		}
	}
	return out
}

// LocalGames renders every game at the user's university.
func (c *Controller) LocalGames(ctx context.Context) error {
	return c.do(ctx, "local_games", func() error {
		s, err := c.cache.Load(ctx)
		if err != nil {
			return err
		}
		games, err := c.client.SearchGames(ctx, s.University)
		if err != nil {
			return err
		}
		c.doc.Reset(view.AllLocalGames)
		if err := c.renderer.RenderGameList(c.doc, view.AllLocalGames, games); err != nil {
			return err
		}
		c.doc.Show(view.ExploreGames)
		c.doc.Show(view.AllLocalGames)
		return nil
	})
}

// LeaveGame takes the user out of a game and drops it from every cached
// game list before refreshing.
func (c *Controller) LeaveGame(ctx context.Context, gameID string) error {
	return c.do(ctx, "leave_game", func() error {
		s, err := c.cache.Load(ctx)
		if err != nil {
			return err
		}
		msg, err := c.client.WithdrawGame(ctx, gameID, s.UserID)
		if err != nil {
			return err
		}
		lists := map[string][]string{
			session.KeyGamesOwned:    s.GamesOwned,
			session.KeyGamesJoined:   s.GamesJoined,
			session.KeyOrphanedGames: s.OrphanedGames,
		}
		for key, ids := range lists {
			if !slices.Contains(ids, gameID) {
				continue
			}
			rest := slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == gameID })
			if err := c.cache.SetList(ctx, key, rest); err != nil {
				return err
			}
		}
		if msg != "" {
			c.alerter.Alert(msg)
		}
		return c.myGames(ctx)
	})
}

// JoinGame adds the user to a game and refreshes their games.
func (c *Controller) JoinGame(ctx context.Context, gameID string) error {
	return c.do(ctx, "join_game", func() error {
		s, err := c.cache.Load(ctx)
		if err != nil {
			return err
		}
		msg, err := c.client.JoinGame(ctx, gameID, s.UserID)
		if err != nil {
			return err
		}
		if !slices.Contains(s.GamesJoined, gameID) {
			if err := c.cache.SetList(ctx, session.KeyGamesJoined, append(s.GamesJoined, gameID)); err != nil {
				return err
			}
		}
		if msg != "" {
			c.alerter.Alert(msg)
		}
		return c.myGames(ctx)
	})
}
