package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAssignsUid(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	created, err := service.CreateUser(context.Background(), User{
		Username:    "amira",
		DisplayName: "Amira",
		Settings:    Settings{Language: "ar", Timezone: "Africa/Cairo"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.Uid)
	assert.NotZero(t, created.Id)
}

func TestGetCurrentUser(t *testing.T) {
	repo := NewStubUserRepository()
	service := NewUserService(repo)

	created, err := service.CreateUser(context.Background(), User{Username: "amira"})
	require.NoError(t, err)

	ctx := WithUser(context.Background(), created)
	current, err := service.GetCurrentUser(ctx)

	require.NoError(t, err)
	assert.Equal(t, created.Username, current.Username)
}

func TestGetCurrentUserWithoutContext(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	_, err := service.GetCurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNoUser)
}

func TestDeleteUserByUid(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	created, err := service.CreateUser(context.Background(), User{Username: "amira"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUserByUid(context.Background(), created.Uid))

	_, err = service.GetUserByUid(context.Background(), created.Uid)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsUsernameAvailable(t *testing.T) {
	service := NewUserService(NewStubUserRepository())

	_, err := service.CreateUser(context.Background(), User{Username: "amira"})
	require.NoError(t, err)

	taken, err := service.IsUsernameAvailable(context.Background(), "amira")
	require.NoError(t, err)
	assert.False(t, taken)

	free, err := service.IsUsernameAvailable(context.Background(), "zied")
	require.NoError(t, err)
	assert.True(t, free)
}
