package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/dmitrijs2005/sporttogether/internal/server/repositories/repomanager"
)

// NewGame is what an owner submits to schedule a game.
type NewGame struct {
	Type       string
	Location   string
	Date       string
	Time       string
	NumPlayers int
}

// GameUpdate carries the edited fields of a game. Blank strings and a nil
// NumPlayers leave the stored value alone.
type GameUpdate struct {
	GameID     string
	Type       string
	Location   string
	Date       string
	Time       string
	NumPlayers *int
}

// UserGames groups the games a user is involved in.
type UserGames struct {
	Owned    []models.Game
	Joined   []models.Game
	Orphaned []models.Game
}

// GameService schedules, edits and lists pickup games.
type GameService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGameService(db *sql.DB, m repomanager.RepositoryManager) *GameService {
	return &GameService{db: db, repomanager: m}
}

// ReadForUser returns the games userID owns, has joined, and has joined but
// lost the owner of.
func (s *GameService) ReadForUser(ctx context.Context, userID string) (*UserGames, error) {
	repo := s.repomanager.Games(s.db)

	owned, err := repo.OwnedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing owned games: %w", err)
	}
	joined, err := repo.JoinedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing joined games: %w", err)
	}
	orphaned, err := repo.OrphanedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing orphaned games: %w", err)
	}

	out := &UserGames{}
	if out.Owned, err = s.ReadByIDs(ctx, owned); err != nil {
		return nil, err
	}
	if out.Joined, err = s.ReadByIDs(ctx, joined); err != nil {
		return nil, err
	}
	if out.Orphaned, err = s.ReadByIDs(ctx, orphaned); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadByIDs returns the games with the given ids in the order asked for.
// Unknown ids are skipped, so the result may be shorter than ids.
func (s *GameService) ReadByIDs(ctx context.Context, ids []string) ([]models.Game, error) {
	repo := s.repomanager.Games(s.db)

	out := make([]models.Game, 0, len(ids))
	for _, id := range ids {
		g, err := repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				continue
			}
			return nil, fmt.Errorf("error reading game %s: %w", id, err)
		}
		out = append(out, *g)
	}
	return out, nil
}

// Search lists the games at location, optionally of one sport only.
func (s *GameService) Search(ctx context.Context, location, sport string) ([]models.Game, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: missing location", common.ErrorValidation)
	}
	if sport != "" && !common.IsSupportedSport(sport) {
		return nil, fmt.Errorf("%w: unsupported sport %q", common.ErrorValidation, sport)
	}

	games, err := s.repomanager.Games(s.db).Search(ctx, location, sport)
	if err != nil {
		return nil, fmt.Errorf("error searching games: %w", err)
	}
	if games == nil {
		games = []models.Game{}
	}
	return games, nil
}

// Create schedules a game owned by ownerID and returns its id.
func (s *GameService) Create(ctx context.Context, ownerID string, g NewGame) (string, error) {
	if missing := missingFields(map[string]string{
		"type":     g.Type,
		"location": g.Location,
		"date":     g.Date,
		"time":     g.Time,
	}, "type", "location", "date", "time"); len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", common.ErrorValidation, strings.Join(missing, ", "))
	}
	if err := validateGame(g.Type, g.NumPlayers); err != nil {
		return "", err
	}

	var id string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.repomanager.Users(tx).GetByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error reading owner: %w", err)
		}

		game, err := s.repomanager.Games(tx).Create(ctx, &models.Game{
			Type:           g.Type,
			Location:       strings.TrimSpace(g.Location),
			Date:           g.Date,
			Time:           g.Time,
			NumPlayers:     g.NumPlayers,
			OwnerID:        owner.ID,
			OwnerFirstName: owner.FirstName,
		})
		if err != nil {
			return fmt.Errorf("error creating game: %w", err)
		}
		id = game.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update applies u on behalf of userID, who must own the game. It returns
// the stored game, or nil when the update changed nothing.
func (s *GameService) Update(ctx context.Context, userID string, u GameUpdate) (*models.Game, error) {
	if strings.TrimSpace(u.GameID) == "" {
		return nil, fmt.Errorf("%w: missing game_id", common.ErrorValidation)
	}

	var updated *models.Game
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Games(tx)

		game, err := repo.GetByID(ctx, u.GameID)
		if err != nil {
			return err
		}
		if game.OwnerID == "" || game.OwnerID != userID {
			return common.ErrorUnauthorized
		}

		applyUpdate(game, u)
		if err := validateGame(game.Type, game.NumPlayers); err != nil {
			return err
		}

		changed, err := repo.Update(ctx, game)
		if err != nil {
			return fmt.Errorf("error updating game: %w", err)
		}
		if changed {
			updated = game
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Join adds userID to the attendees of gameID. Joining twice yields
// common.ErrorConflict.
func (s *GameService) Join(ctx context.Context, gameID, userID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error reading user: %w", err)
		}

		repo := s.repomanager.Games(tx)
		if _, err := repo.GetByID(ctx, gameID); err != nil {
			return err
		}

		added, err := repo.AddAttendee(ctx, gameID, models.Attendee{UserID: user.ID, FirstName: user.FirstName})
		if err != nil {
			return fmt.Errorf("error joining game: %w", err)
		}
		if !added {
			return common.ErrorConflict
		}
		return nil
	})
}

// Withdraw takes userID out of the game. When the owner withdraws the game
// stays listed but has no owner, and shows up as orphaned for everyone still
// attending. A user who neither owns nor attends the game gets
// common.ErrorConflict.
func (s *GameService) Withdraw(ctx context.Context, gameID, userID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Games(tx)
		if _, err := repo.GetByID(ctx, gameID); err != nil {
			return err
		}

		left, err := repo.RemoveAttendee(ctx, gameID, userID)
		if err != nil {
			return fmt.Errorf("error leaving game: %w", err)
		}
		orphaned, err := repo.ClearOwner(ctx, gameID, userID)
		if err != nil {
			return fmt.Errorf("error leaving game: %w", err)
		}
		if !left && !orphaned {
			return common.ErrorConflict
		}
		return nil
	})
}

func applyUpdate(g *models.Game, u GameUpdate) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&g.Type, u.Type)
	set(&g.Location, u.Location)
	set(&g.Date, u.Date)
	set(&g.Time, u.Time)
	if u.NumPlayers != nil {
		g.NumPlayers = *u.NumPlayers
	}
}

func validateGame(sport string, numPlayers int) error {
	if !common.IsSupportedSport(sport) {
		return fmt.Errorf("%w: unsupported sport %q", common.ErrorValidation, sport)
	}
	if numPlayers < 0 {
		return fmt.Errorf("%w: numPlayers must not be negative", common.ErrorValidation)
	}
	return nil
}
