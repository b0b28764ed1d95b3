package users

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"codeberg.org/mutker/erroror"
)

type service struct {
	repo Repository
}

func NewService(cfg Config) (Service, error) {
	repo, err := NewRepository(cfg)
	if err != nil {
		return nil, err
	}

	return &service{
		repo: repo,
	}, nil
}

func (s *service) Register(ctx context.Context, name, email string, age int) erroror.ErrorOr[User] {
	res := NewUser(name, email, age)
	if res.IsError() {
		return res
	}

	user := res.Value()
	if created := s.repo.Create(ctx, user); created.IsError() {
		return erroror.FromErrors[User](created.Errors()...)
	}

	return erroror.FromValue(user)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) erroror.ErrorOr[User] {
	return s.repo.Get(ctx, id)
}

func (s *service) Rename(ctx context.Context, id uuid.UUID, name string) erroror.ErrorOr[erroror.Updated] {
	name = strings.TrimSpace(name)
	if len(name) < minNameLength {
		return erroror.FromError[erroror.Updated](ErrNameTooShort)
	}

	res := s.repo.Get(ctx, id)
	if res.IsError() {
		return erroror.FromErrors[erroror.Updated](res.Errors()...)
	}

	user := res.Value()
	user.Name = name

	return s.repo.Update(ctx, user)
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) erroror.ErrorOr[erroror.Deleted] {
	return s.repo.Delete(ctx, id)
}

func (s *service) Close() error {
	return s.repo.Close()
}
