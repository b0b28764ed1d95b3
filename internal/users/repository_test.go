package users_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/erroror"
	"codeberg.org/mutker/erroror/internal/users"
)

func newTestRepository(t *testing.T) users.Repository {
	t.Helper()

	repo, err := users.NewRepository(users.Config{
		DBPath: filepath.Join(t.TempDir(), "users.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func mustUser(t *testing.T, name, email string, age int) users.User {
	t.Helper()

	res := users.NewUser(name, email, age)
	require.True(t, res.IsSuccess())

	return res.Value()
}

func TestRepositoryCreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	user := mustUser(t, "Alice", "alice@example.com", 30)

	created := repo.Create(ctx, user)
	require.True(t, created.IsSuccess())
	assert.Equal(t, erroror.Created{}, created.Value())

	fetched := repo.Get(ctx, user.ID)
	require.True(t, fetched.IsSuccess())
	assert.Equal(t, user, fetched.Value())
}

func TestRepositoryDuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := mustUser(t, "Alice", "alice@example.com", 30)
	require.True(t, repo.Create(ctx, first).IsSuccess())

	second := mustUser(t, "Bob", "alice@example.com", 41)
	res := repo.Create(ctx, second)

	require.True(t, res.IsError())
	assert.True(t, res.FirstError().Equal(users.ErrDuplicateEmail))
	assert.Equal(t, erroror.KindConflict, res.FirstError().Kind())
}

func TestRepositoryGetMissing(t *testing.T) {
	repo := newTestRepository(t)

	res := repo.Get(context.Background(), uuid.New())

	require.True(t, res.IsError())
	assert.True(t, res.FirstError().Equal(users.ErrNotFound))
	assert.Equal(t, erroror.KindNotFound, res.FirstError().Kind())
}

func TestRepositoryUpdate(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	user := mustUser(t, "Alice", "alice@example.com", 30)
	require.True(t, repo.Create(ctx, user).IsSuccess())

	user.Name = "Alice Cooper"
	updated := repo.Update(ctx, user)
	require.True(t, updated.IsSuccess())
	assert.Equal(t, erroror.Updated{}, updated.Value())

	fetched := repo.Get(ctx, user.ID)
	require.True(t, fetched.IsSuccess())
	assert.Equal(t, "Alice Cooper", fetched.Value().Name)
}

func TestRepositoryUpdateMissing(t *testing.T) {
	repo := newTestRepository(t)
	user := mustUser(t, "Alice", "alice@example.com", 30)

	res := repo.Update(context.Background(), user)

	require.True(t, res.IsError())
	assert.True(t, res.FirstError().Equal(users.ErrNotFound))
}

func TestRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	user := mustUser(t, "Alice", "alice@example.com", 30)
	require.True(t, repo.Create(ctx, user).IsSuccess())

	deleted := repo.Delete(ctx, user.ID)
	require.True(t, deleted.IsSuccess())
	assert.Equal(t, erroror.Deleted{}, deleted.Value())

	missing := repo.Get(ctx, user.ID)
	require.True(t, missing.IsError())
	assert.True(t, missing.FirstError().Equal(users.ErrNotFound))
}

func TestRepositoryDeleteMissing(t *testing.T) {
	repo := newTestRepository(t)

	res := repo.Delete(context.Background(), uuid.New())

	require.True(t, res.IsError())
	assert.True(t, res.FirstError().Equal(users.ErrNotFound))
}

func TestRepositoryRejectsEmptyPath(t *testing.T) {
	_, err := users.NewRepository(users.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User.Storage.Path")
}
