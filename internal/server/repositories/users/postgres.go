// Package users stores accounts in PostgreSQL.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/dbx"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// newID is a seam for tests.
var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, email_address, first_name, last_name, university, password_hash,
		                    tennis, frisbee, soccer, running, basketball)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at
		 `

	id := newID()
	in := user.Interests
	err := r.db.QueryRowContext(ctx, query,
		id, user.EmailAddress, user.FirstName, user.LastName, user.University, user.PasswordHash,
		in["tennis"], in["frisbee"], in["soccer"], in["running"], in["basketball"],
	).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	return user, nil
}

const selectUser = `SELECT id, email_address, first_name, last_name, university, password_hash,
		        tennis, frisbee, soccer, running, basketball, created_at
		   FROM users
		`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, selectUser+`WHERE email_address = $1`, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, selectUser+`WHERE id = $1`, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) get(ctx context.Context, query string, arg string) (*models.User, error) {
	var u models.User
	var tennis, frisbee, soccer, running, basketball bool

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.EmailAddress, &u.FirstName, &u.LastName, &u.University, &u.PasswordHash,
		&tennis, &frisbee, &soccer, &running, &basketball, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	u.Interests = map[string]bool{
		"tennis":     tennis,
		"frisbee":    frisbee,
		"soccer":     soccer,
		"running":    running,
		"basketball": basketball,
	}
	return &u, nil
}
