package users

import (
	"context"

	"github.com/google/uuid"

	"codeberg.org/mutker/erroror"
)

// User is the example domain entity managed by this package.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
	Age   int
}

// Repository persists users. Domain outcomes (conflict, absence) come
// back as failure results; only infrastructure setup reports a plain
// error.
type Repository interface {
	Create(ctx context.Context, user User) erroror.ErrorOr[erroror.Created]
	Get(ctx context.Context, id uuid.UUID) erroror.ErrorOr[User]
	Update(ctx context.Context, user User) erroror.ErrorOr[erroror.Updated]
	Delete(ctx context.Context, id uuid.UUID) erroror.ErrorOr[erroror.Deleted]
	Close() error
}

// Service defines the core domain interface consumed by the
// presentation layer.
type Service interface {
	Register(ctx context.Context, name, email string, age int) erroror.ErrorOr[User]
	Get(ctx context.Context, id uuid.UUID) erroror.ErrorOr[User]
	Rename(ctx context.Context, id uuid.UUID, name string) erroror.ErrorOr[erroror.Updated]
	Remove(ctx context.Context, id uuid.UUID) erroror.ErrorOr[erroror.Deleted]
	Close() error
}
