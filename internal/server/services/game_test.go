package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gameFixture struct {
	svc   *GameService
	mock  sqlmock.Sqlmock
	users *fakeUsersRepo
	games *fakeGamesRepo
}

func newGameFixture(t *testing.T) *gameFixture {
	t.Helper()
	db, mock := newSQLMockDB(t)
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	users := newFakeUsersRepo(
		&models.User{ID: "7", FirstName: "Ann"},
		&models.User{ID: "8", FirstName: "Bob"},
	)
	games := newFakeGamesRepo(
		&models.Game{ID: "G1", Type: "soccer", Location: "Princeton", Date: "2026-10-20", Time: "17:00",
			NumPlayers: 10, OwnerID: "7", OwnerFirstName: "Ann"},
		&models.Game{ID: "G2", Type: "tennis", Location: "Princeton", Date: "2026-10-21", Time: "09:00",
			OwnerID: "8", OwnerFirstName: "Bob", Attendees: []models.Attendee{{UserID: "7", FirstName: "Ann"}}},
		&models.Game{ID: "G3", Type: "running", Location: "Yale", Date: "2026-10-22", Time: "07:00",
			Attendees: []models.Attendee{{UserID: "7", FirstName: "Ann"}}},
	)

	return &gameFixture{
		svc:   NewGameService(db, &fakeRepoManager{u: users, g: games}),
		mock:  mock,
		users: users,
		games: games,
	}
}

func TestReadForUser(t *testing.T) {
	f := newGameFixture(t)

	got, err := f.svc.ReadForUser(context.Background(), "7")
	require.NoError(t, err)

	require.Len(t, got.Owned, 1)
	assert.Equal(t, "G1", got.Owned[0].ID)
	require.Len(t, got.Joined, 2)
	assert.Equal(t, "G2", got.Joined[0].ID)
	assert.Equal(t, "G3", got.Joined[1].ID)
	require.Len(t, got.Orphaned, 1)
	assert.Equal(t, "G3", got.Orphaned[0].ID)
}

func TestReadForUser_Error(t *testing.T) {
	f := newGameFixture(t)
	f.games.err = errors.New("db down")

	_, err := f.svc.ReadForUser(context.Background(), "7")
	assert.ErrorContains(t, err, "error listing owned games")
}

func TestReadByIDs_SkipsUnknownAndKeepsOrder(t *testing.T) {
	f := newGameFixture(t)

	got, err := f.svc.ReadByIDs(context.Background(), []string{"G2", "missing", "G1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "G2", got[0].ID)
	assert.Equal(t, "G1", got[1].ID)

	empty, err := f.svc.ReadByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSearch(t *testing.T) {
	f := newGameFixture(t)

	got, err := f.svc.Search(context.Background(), " Princeton ", "tennis")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "G2", got[0].ID)
	assert.Equal(t, []string{"Princeton/tennis"}, f.games.searched)

	none, err := f.svc.Search(context.Background(), "Harvard", "")
	require.NoError(t, err)
	assert.NotNil(t, none)

	_, err = f.svc.Search(context.Background(), "", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.Search(context.Background(), "Princeton", "chess")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestCreate_Success(t *testing.T) {
	f := newGameFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	id, err := f.svc.Create(context.Background(), "7", NewGame{
		Type: "basketball", Location: " Princeton ", Date: "2026-10-25", Time: "18:00", NumPlayers: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, "G-new", id)

	stored := f.games.byID["G-new"]
	assert.Equal(t, "7", stored.OwnerID)
	assert.Equal(t, "Ann", stored.OwnerFirstName)
	assert.Equal(t, "Princeton", stored.Location)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		game NewGame
		want string
	}{
		{name: "missing fields", game: NewGame{Type: "soccer"}, want: "missing location, date, time"},
		{name: "unsupported sport", game: NewGame{Type: "chess", Location: "P", Date: "d", Time: "t"}, want: `unsupported sport "chess"`},
		{name: "negative players", game: NewGame{Type: "soccer", Location: "P", Date: "d", Time: "t", NumPlayers: -1}, want: "numPlayers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGameFixture(t)
			_, err := f.svc.Create(context.Background(), "7", tt.game)
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCreate_UnknownOwnerRollsBack(t *testing.T) {
	f := newGameFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Create(context.Background(), "404", NewGame{Type: "soccer", Location: "P", Date: "d", Time: "t"})
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUpdate_Changed(t *testing.T) {
	f := newGameFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	got, err := f.svc.Update(context.Background(), "7", GameUpdate{GameID: "G1", Time: "18:30", Location: "Yale"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "18:30", got.Time)
	assert.Equal(t, "Yale", got.Location)
	assert.Equal(t, "soccer", got.Type)
	assert.Equal(t, "18:30", f.games.byID["G1"].Time)
}

func TestUpdate_UnchangedReturnsNil(t *testing.T) {
	f := newGameFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	got, err := f.svc.Update(context.Background(), "7", GameUpdate{GameID: "G1", Time: "17:00"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate_Errors(t *testing.T) {
	t.Run("not the owner", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.svc.Update(context.Background(), "8", GameUpdate{GameID: "G1", Time: "18:00"})
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("orphaned game", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.svc.Update(context.Background(), "", GameUpdate{GameID: "G3", Time: "08:00"})
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("unknown game", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.svc.Update(context.Background(), "7", GameUpdate{GameID: "nope"})
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		f := newGameFixture(t)
		_, err := f.svc.Update(context.Background(), "7", GameUpdate{})
		assert.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("unsupported type", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.svc.Update(context.Background(), "7", GameUpdate{GameID: "G1", Type: "chess"})
		assert.ErrorIs(t, err, common.ErrorValidation)
	})
}

func TestJoin(t *testing.T) {
	f := newGameFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	require.NoError(t, f.svc.Join(context.Background(), "G1", "8"))
	assert.Equal(t, []string{"Bob"}, f.games.byID["G1"].AttendeeFirstNames())

	err := f.svc.Join(context.Background(), "G1", "8")
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestJoin_Errors(t *testing.T) {
	t.Run("unknown game", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		assert.ErrorIs(t, f.svc.Join(context.Background(), "nope", "8"), common.ErrorNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		assert.ErrorIs(t, f.svc.Join(context.Background(), "G1", "404"), common.ErrorUnauthorized)
	})
}

func TestWithdraw_Attendee(t *testing.T) {
	f := newGameFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.svc.Withdraw(context.Background(), "G2", "7"))

	assert.Empty(t, f.games.byID["G2"].Attendees)
	assert.Equal(t, "8", f.games.byID["G2"].OwnerID)
}

func TestWithdraw_OwnerOrphansGame(t *testing.T) {
	f := newGameFixture(t)
	f.games.byID["G1"].Attendees = []models.Attendee{{UserID: "8", FirstName: "Bob"}}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.svc.Withdraw(context.Background(), "G1", "7"))
	assert.Empty(t, f.games.byID["G1"].OwnerID)

	got, err := f.svc.ReadForUser(context.Background(), "8")
	require.NoError(t, err)
	require.Len(t, got.Orphaned, 1)
	assert.Equal(t, "G1", got.Orphaned[0].ID)

	owned, err := f.svc.ReadForUser(context.Background(), "7")
	require.NoError(t, err)
	assert.Empty(t, owned.Owned)
}

func TestWithdraw_Errors(t *testing.T) {
	t.Run("not part of the game", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		assert.ErrorIs(t, f.svc.Withdraw(context.Background(), "G1", "8"), common.ErrorConflict)
	})

	t.Run("unknown game", func(t *testing.T) {
		f := newGameFixture(t)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		assert.ErrorIs(t, f.svc.Withdraw(context.Background(), "nope", "7"), common.ErrorNotFound)
	})

	t.Run("db failure", func(t *testing.T) {
		f := newGameFixture(t)
		f.games.err = errors.New("db down")
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		err := f.svc.Withdraw(context.Background(), "G1", "7")
		assert.ErrorContains(t, err, "db down")
	})
}
