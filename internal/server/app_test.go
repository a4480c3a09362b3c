package server

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/dmitrijs2005/sporttogether/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOpenDB(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string) (*sql.DB, error) { return db, err }
}

func newTestServer(addr string) *http.Server {
	return &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.HTTPAddr = "127.0.0.1:0"
	return c
}

func TestNewApp_PingFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()
	stubOpenDB(t, db, nil)

	app, err := NewApp(context.Background(), testConfig(), logging.Discard())

	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "db ping")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_OpenFails(t *testing.T) {
	stubOpenDB(t, nil, errors.New("bad dsn"))

	_, err := NewApp(context.Background(), testConfig(), logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db open")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	app := &App{
		config: testConfig(),
		logger: logging.Discard(),
		db:     db,
	}
	app.server = newTestServer(app.config.HTTPAddr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	db, _, err := sqlmock.New()
	require.NoError(t, err)

	app := &App{config: testConfig(), logger: logging.Discard(), db: db}
	app.server = newTestServer(busy.Addr().String())

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
