package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/server/repositories/games"
	"github.com/dmitrijs2005/sporttogether/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same service
// code runs against the pool or inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Games(db dbx.DBTX) games.Repository
}
