//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shooping/list-server/internal/model"
	repo "github.com/shooping/list-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "shoplist_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/shoplist_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func createUser(t *testing.T, conn *repo.Connection) model.User {
	t.Helper()
	ctx := context.Background()

	roles := repo.NewRoleRepository(conn)
	role, err := roles.GetByName(ctx, model.RoleUser)
	require.NoError(t, err)

	user := model.NewLocalUser(fmt.Sprintf("%s@example.com", uuid.NewString()), "Anna", "hash")
	user.Roles = []model.Role{role}

	users := repo.NewUserRepository(conn)
	created, err := users.Create(ctx, user)
	require.NoError(t, err)
	return created
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn)

	created := createUser(t, conn)

	byEmail, err := users.GetByEmail(ctx, created.Email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.True(t, byEmail.HasRole(model.RoleUser))

	byID, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)

	_, err = users.GetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}

func TestRefreshTokenRepository_RotationFlow(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	user := createUser(t, conn)
	tokens := repo.NewRefreshTokenRepository(conn)

	first := model.NewRefreshToken(user.ID, uuid.NewString(), time.Now().Add(time.Hour), "ua", "127.0.0.1")
	_, err = tokens.Insert(ctx, first)
	require.NoError(t, err)

	_, err = tokens.FindByHash(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Rotate inside one transaction: insert successor, revoke the old
	// record with a link to it.
	err = tokens.InTx(ctx, func(ctx context.Context, store model.RefreshTokenStore) error {
		current, err := store.FindByHashForUpdate(ctx, first.TokenHash)
		if err != nil {
			return err
		}

		replacement := model.NewRefreshToken(user.ID, uuid.NewString(), time.Now().Add(time.Hour), "ua", "127.0.0.1")
		inserted, err := store.Insert(ctx, replacement)
		if err != nil {
			return err
		}

		if err := current.Revoke(&inserted.ID); err != nil {
			return err
		}
		return store.Save(ctx, current)
	})
	require.NoError(t, err)

	revoked, err := tokens.FindByHash(ctx, first.TokenHash)
	require.NoError(t, err)
	assert.True(t, revoked.IsRevoked())
	require.NotNil(t, revoked.ReplacedByTokenID)

	// A failing transaction leaves no trace.
	ghost := model.NewRefreshToken(user.ID, uuid.NewString(), time.Now().Add(time.Hour), "ua", "127.0.0.1")
	err = tokens.InTx(ctx, func(ctx context.Context, store model.RefreshTokenStore) error {
		if _, err := store.Insert(ctx, ghost); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	require.Error(t, err)

	_, err = tokens.FindByHash(ctx, ghost.TokenHash)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestShoppingListRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	user := createUser(t, conn)
	lists := repo.NewShoppingListRepository(conn)

	list, err := model.NewShoppingList(user.ID, "Groceries", "weekly run")
	require.NoError(t, err)
	_, err = list.AddItem("Milk", 2, "l", nil)
	require.NoError(t, err)

	created, err := lists.Create(ctx, list)
	require.NoError(t, err)

	got, err := lists.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Milk", got.Items[0].Name)

	_, err = got.AddItem("Bread", 1, "pc", nil)
	require.NoError(t, err)
	require.NoError(t, lists.Update(ctx, got))

	updated, err := lists.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 2)

	owned, err := lists.GetByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	require.NoError(t, lists.Delete(ctx, created.ID))
	_, err = lists.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
