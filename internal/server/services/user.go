// Package services contains server-side business logic: accounts and
// sessions in UserService, pickup games in GameService.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/server/auth"
	"github.com/dmitrijs2005/sporttogether/internal/server/config"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/dmitrijs2005/sporttogether/internal/server/repositories/repomanager"
)

// Registration is what a new member submits. Interests maps a supported
// sport to whether the member plays it; absent sports count as false.
type Registration struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
	University   string
	Interests    map[string]bool
}

// Session is returned by a successful login.
type Session struct {
	UserID        string
	FirstName     string
	University    string
	GamesOwned    []string
	GamesJoined   []string
	OrphanedGames []string
	Interests     map[string]bool
	SessionToken  string
}

// UserService handles registration, login and account lookups.
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Register creates an account and returns its id. A taken email address
// yields common.ErrorConflict, missing fields common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, r Registration) (string, error) {
	r.EmailAddress = normalizeEmail(r.EmailAddress)

	if missing := missingFields(map[string]string{
		"first_name":    r.FirstName,
		"last_name":     r.LastName,
		"email_address": r.EmailAddress,
		"password":      r.Password,
		"university":    r.University,
	}, "first_name", "last_name", "email_address", "password", "university"); len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", common.ErrorValidation, strings.Join(missing, ", "))
	}

	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return "", common.ErrorInternal
	}

	interests := make(map[string]bool, len(common.SupportedSports))
	for _, sport := range common.SupportedSports {
		interests[sport] = r.Interests[sport]
	}

	user := &models.User{
		EmailAddress: r.EmailAddress,
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		University:   strings.TrimSpace(r.University),
		PasswordHash: hash,
		Interests:    interests,
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return "", common.ErrorConflict
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}
	return u.ID, nil
}

// Login checks the credentials and opens a session. Unknown accounts and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	session := &Session{
		UserID:       user.ID,
		FirstName:    user.FirstName,
		University:   user.University,
		Interests:    user.Interests,
		SessionToken: token,
	}

	games := s.repomanager.Games(s.db)
	if session.GamesOwned, err = games.OwnedIDs(ctx, user.ID); err != nil {
		return nil, common.ErrorInternal
	}
	if session.GamesJoined, err = games.JoinedIDs(ctx, user.ID); err != nil {
		return nil, common.ErrorInternal
	}
	if session.OrphanedGames, err = games.OrphanedIDs(ctx, user.ID); err != nil {
		return nil, common.ErrorInternal
	}
	return session, nil
}

// Get returns the account with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Delete removes the account. The database drops its attendances and
// orphans the games it owned. An unknown id yields common.ErrorUnauthorized,
// since only a session user can ask.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}

// UserIDFromToken resolves a session token to its user id.
func (s *UserService) UserIDFromToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// missingFields returns, in order, the names whose value is blank.
func missingFields(values map[string]string, names ...string) []string {
	var missing []string
	for _, name := range names {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
