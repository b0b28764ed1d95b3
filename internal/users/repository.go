package users

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"codeberg.org/mutker/erroror"
)

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	if res := cfg.Validate(); res.IsError() {
		return nil, res.FirstError()
	}

	// Ensure the directory exists
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, user User) erroror.ErrorOr[erroror.Created] {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO users (id, name, email, age) VALUES (?, ?, ?, ?)
    `, user.ID.String(), user.Name, user.Email, user.Age)
	if err != nil {
		if isUniqueViolation(err) {
			return erroror.FromError[erroror.Created](ErrDuplicateEmail)
		}
		return erroror.FromError[erroror.Created](storageError("create", err))
	}

	return erroror.ResultCreated
}

func (r *sqliteRepository) Get(ctx context.Context, id uuid.UUID) erroror.ErrorOr[User] {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, age FROM users WHERE id = ?
    `, id.String())

	var (
		rawID string
		user  User
	)
	if err := row.Scan(&rawID, &user.Name, &user.Email, &user.Age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return erroror.FromError[User](ErrNotFound)
		}
		return erroror.FromError[User](storageError("get", err))
	}

	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return erroror.FromError[User](storageError("get", err))
	}
	user.ID = parsed

	return erroror.FromValue(user)
}

func (r *sqliteRepository) Update(ctx context.Context, user User) erroror.ErrorOr[erroror.Updated] {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        UPDATE users SET name = ?, email = ?, age = ? WHERE id = ?
    `, user.Name, user.Email, user.Age, user.ID.String())
	if err != nil {
		if isUniqueViolation(err) {
			return erroror.FromError[erroror.Updated](ErrDuplicateEmail)
		}
		return erroror.FromError[erroror.Updated](storageError("update", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return erroror.FromError[erroror.Updated](storageError("update", err))
	}
	if affected == 0 {
		return erroror.FromError[erroror.Updated](ErrNotFound)
	}

	return erroror.ResultUpdated
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) erroror.ErrorOr[erroror.Deleted] {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        DELETE FROM users WHERE id = ?
    `, id.String())
	if err != nil {
		return erroror.FromError[erroror.Deleted](storageError("delete", err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return erroror.FromError[erroror.Deleted](storageError("delete", err))
	}
	if affected == 0 {
		return erroror.FromError[erroror.Deleted](ErrNotFound)
	}

	return erroror.ResultDeleted
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
