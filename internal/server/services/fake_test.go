package services

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/server/config"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	gamesrepo "github.com/dmitrijs2005/sporttogether/internal/server/repositories/games"
	usersrepo "github.com/dmitrijs2005/sporttogether/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", SessionValidityDuration: time.Hour}
}

// fakeUsersRepo keeps users in memory, keyed by id.
type fakeUsersRepo struct {
	byID      map[string]*models.User
	nextID    string
	createErr error
	getErr    error
	// games, when set, receives the cascade of Delete.
	games *fakeGamesRepo
}

func newFakeUsersRepo(users ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}, nextID: "u-new"}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.EmailAddress == u.EmailAddress {
			return nil, common.ErrorConflict
		}
	}
	u.ID = f.nextID
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	if f.getErr != nil {
		return f.getErr
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	if f.games != nil {
		f.games.deleteUser(id)
	}
	return nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

// fakeGamesRepo keeps games in memory. Update reports a change only when a
// field differs, like the SQL IS DISTINCT FROM guard.
type fakeGamesRepo struct {
	byID     map[string]*models.Game
	nextID   string
	err      error
	searched []string
}

func newFakeGamesRepo(games ...*models.Game) *fakeGamesRepo {
	f := &fakeGamesRepo{byID: map[string]*models.Game{}, nextID: "G-new"}
	for _, g := range games {
		f.byID[g.ID] = g
	}
	return f
}

func (f *fakeGamesRepo) Create(ctx context.Context, g *models.Game) (*models.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	g.ID = f.nextID
	cp := *g
	f.byID[g.ID] = &cp
	return g, nil
}

func (f *fakeGamesRepo) GetByID(ctx context.Context, id string) (*models.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *g
	cp.Attendees = append([]models.Attendee(nil), g.Attendees...)
	return &cp, nil
}

func (f *fakeGamesRepo) Search(ctx context.Context, location, sport string) ([]models.Game, error) {
	f.searched = append(f.searched, location+"/"+sport)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Game
	for _, g := range f.byID {
		if g.Location == location && (sport == "" || g.Type == sport) {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGamesRepo) Update(ctx context.Context, g *models.Game) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	cur := f.byID[g.ID]
	if cur.Type == g.Type && cur.Location == g.Location && cur.Date == g.Date &&
		cur.Time == g.Time && cur.NumPlayers == g.NumPlayers {
		return false, nil
	}
	cp := *g
	f.byID[g.ID] = &cp
	return true, nil
}

func (f *fakeGamesRepo) AddAttendee(ctx context.Context, gameID string, a models.Attendee) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	g := f.byID[gameID]
	for _, existing := range g.Attendees {
		if existing.UserID == a.UserID {
			return false, nil
		}
	}
	g.Attendees = append(g.Attendees, a)
	return true, nil
}

func (f *fakeGamesRepo) RemoveAttendee(ctx context.Context, gameID, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	g := f.byID[gameID]
	for i, a := range g.Attendees {
		if a.UserID == userID {
			g.Attendees = slices.Delete(g.Attendees, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGamesRepo) ClearOwner(ctx context.Context, gameID, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	g := f.byID[gameID]
	if g.OwnerID == "" || g.OwnerID != userID {
		return false, nil
	}
	g.OwnerID = ""
	return true, nil
}

// deleteUser mimics the foreign keys: attendances are dropped and owned
// games lose their owner.
func (f *fakeGamesRepo) deleteUser(userID string) {
	for _, g := range f.byID {
		g.Attendees = slices.DeleteFunc(g.Attendees, func(a models.Attendee) bool { return a.UserID == userID })
		if g.OwnerID == userID {
			g.OwnerID = ""
		}
	}
}

func (f *fakeGamesRepo) OwnedIDs(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []string{}
	for _, id := range sortedIDs(f.byID) {
		if f.byID[id].OwnerID == userID {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeGamesRepo) JoinedIDs(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []string{}
	for _, id := range sortedIDs(f.byID) {
		for _, a := range f.byID[id].Attendees {
			if a.UserID == userID {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (f *fakeGamesRepo) OrphanedIDs(ctx context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []string{}
	for _, id := range sortedIDs(f.byID) {
		g := f.byID[id]
		if g.OwnerID != "" {
			continue
		}
		for _, a := range g.Attendees {
			if a.UserID == userID {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func sortedIDs(m map[string]*models.Game) []string {
	return slices.Sorted(maps.Keys(m))
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	g *fakeGamesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Games(db dbx.DBTX) gamesrepo.Repository       { return m.g }
