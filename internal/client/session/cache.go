package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/sporttogether/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
)

var ErrNoSession = errors.New("no active session")

// UserSession is the logged-in user as seen by the client.
type UserSession struct {
	FirstName     string
	UserID        string
	SessionToken  string
	GamesOwned    []string
	GamesJoined   []string
	OrphanedGames []string
	University    string
	Soccer        bool
	Running       bool
	Frisbee       bool
	Basketball    bool
}

type Cache struct {
	db     *sql.DB
	repo   metadata.Repository
	logger logging.Logger
}

func NewCache(db *sql.DB, logger logging.Logger) *Cache {
	return &Cache{
		db:     db,
		repo:   metadata.NewSQLiteRepository(db),
		logger: logger.With("module", "session"),
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	return c.repo.Get(ctx, key)
}

func (c *Cache) Set(ctx context.Context, key, value string) error {
	return c.repo.Set(ctx, key, value)
}

// GetList reads a comma-joined value. A missing key is the empty list.
func (c *Cache) GetList(ctx context.Context, key string) ([]string, error) {
	v, _, err := c.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return SplitList(v), nil
}

func (c *Cache) SetList(ctx context.Context, key string, items []string) error {
	return c.repo.Set(ctx, key, JoinList(items))
}

// Token returns the cached session token, or "" when there is none.
func (c *Cache) Token(ctx context.Context) string {
	v, _, err := c.repo.Get(ctx, KeySessionToken)
	if err != nil {
		c.logger.Warn(ctx, "failed to read session token", "error", err)
		return ""
	}
	return v
}

// StoreLogin replaces the cached session with the fields of a login
// response, one entry per field, in a single transaction.
func (c *Cache) StoreLogin(ctx context.Context, fields map[string]any) error {
	err := dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for key, v := range fields {
			if key == "" {
				continue
			}
			s, err := stringify(v)
			if err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			if err := repo.Set(ctx, key, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store login: %w", err)
	}
	c.logger.Debug(ctx, "session stored", "fields", len(fields))
	return nil
}

// Load returns the cached session, or ErrNoSession when no user is logged in.
func (c *Cache) Load(ctx context.Context) (*UserSession, error) {
	all, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if all[KeyUserID] == "" {
		return nil, ErrNoSession
	}
	return &UserSession{
		FirstName:     all[KeyFirstName],
		UserID:        all[KeyUserID],
		SessionToken:  all[KeySessionToken],
		GamesOwned:    SplitList(all[KeyGamesOwned]),
		GamesJoined:   SplitList(all[KeyGamesJoined]),
		OrphanedGames: SplitList(all[KeyOrphanedGames]),
		University:    all[KeyUniversity],
		Soccer:        flag(all[KeySoccer]),
		Running:       flag(all[KeyRunning]),
		Frisbee:       flag(all[KeyFrisbee]),
		Basketball:    flag(all[KeyBasketball]),
	}, nil
}

func (c *Cache) Clear(ctx context.Context) error {
	return c.repo.Clear(ctx)
}

func flag(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

// stringify renders a decoded JSON value the way it is stored: lists are
// comma-joined, scalars use their plain text form.
func stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	case []string:
		return JoinList(t), nil
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			s, err := stringify(item)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return JoinList(items), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
