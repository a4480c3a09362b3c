// Package games stores pickup games and their attendees in PostgreSQL.
package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/google/uuid"
)

// newID is a seam for tests.
var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, game *models.Game) (*models.Game, error) {
	query :=
		`INSERT INTO games (id, type, location, date, time, num_players, owner_id, owner_first_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	id := newID()
	err := r.db.QueryRowContext(ctx, query,
		id, game.Type, game.Location, game.Date, game.Time, game.NumPlayers,
		nullString(game.OwnerID), game.OwnerFirstName,
	).Scan(&game.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	game.ID = id
	return game, nil
}

const selectGame = `SELECT id, type, location, date, time, num_players, owner_id, owner_first_name, created_at
		   FROM games
		`

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(s scanner) (*models.Game, error) {
	var g models.Game
	var owner sql.NullString
	if err := s.Scan(&g.ID, &g.Type, &g.Location, &g.Date, &g.Time, &g.NumPlayers,
		&owner, &g.OwnerFirstName, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.OwnerID = owner.String
	return &g, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	g, err := scanGame(r.db.QueryRowContext(ctx, selectGame+`WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if g.Attendees, err = r.attendees(ctx, g.ID); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *PostgresRepository) attendees(ctx context.Context, gameID string) ([]models.Attendee, error) {
	query :=
		`SELECT user_id, first_name FROM game_attendees
		 WHERE game_id = $1
		 ORDER BY joined_at, user_id
		 `

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Attendee
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(&a.UserID, &a.FirstName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Search(ctx context.Context, location, sport string) ([]models.Game, error) {
	query := selectGame + `WHERE LOWER(location) = LOWER($1) AND ($2 = '' OR type = $2)
		  ORDER BY date, time, id`

	rows, err := r.db.QueryContext(ctx, query, location, sport)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var out []models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *g)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("db error: %w", err)
	}
	rows.Close()

	// attendees are loaded once the result set is closed; a DBTX bound to a
	// transaction cannot run two queries at a time.
	for i := range out {
		if out[i].Attendees, err = r.attendees(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, game *models.Game) (bool, error) {
	query :=
		`UPDATE games
		    SET type = $2, location = $3, date = $4, time = $5, num_players = $6
		  WHERE id = $1
		    AND (type, location, date, time, num_players) IS DISTINCT FROM ($2, $3, $4, $5, $6)
		 `

	res, err := r.db.ExecContext(ctx, query,
		game.ID, game.Type, game.Location, game.Date, game.Time, game.NumPlayers)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) AddAttendee(ctx context.Context, gameID string, a models.Attendee) (bool, error) {
	query :=
		`INSERT INTO game_attendees (game_id, user_id, first_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (game_id, user_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, gameID, a.UserID, a.FirstName)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) RemoveAttendee(ctx context.Context, gameID, userID string) (bool, error) {
	return r.execOne(ctx,
		`DELETE FROM game_attendees WHERE game_id = $1 AND user_id = $2`, gameID, userID)
}

func (r *PostgresRepository) ClearOwner(ctx context.Context, gameID, userID string) (bool, error) {
	return r.execOne(ctx,
		`UPDATE games SET owner_id = NULL WHERE id = $1 AND owner_id = $2`, gameID, userID)
}

// execOne runs a statement that touches at most one row and reports whether
// it did.
func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) OwnedIDs(ctx context.Context, userID string) ([]string, error) {
	return r.ids(ctx,
		`SELECT id FROM games WHERE owner_id = $1 ORDER BY created_at, id`, userID)
}

func (r *PostgresRepository) JoinedIDs(ctx context.Context, userID string) ([]string, error) {
	return r.ids(ctx,
		`SELECT game_id FROM game_attendees WHERE user_id = $1 ORDER BY joined_at, game_id`, userID)
}

func (r *PostgresRepository) OrphanedIDs(ctx context.Context, userID string) ([]string, error) {
	return r.ids(ctx,
		`SELECT a.game_id FROM game_attendees a
		   JOIN games g ON g.id = a.game_id
		  WHERE a.user_id = $1 AND g.owner_id IS NULL
		  ORDER BY a.joined_at, a.game_id`, userID)
}

// ids never returns nil so the lists encode as [] rather than null.
func (r *PostgresRepository) ids(ctx context.Context, query, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
