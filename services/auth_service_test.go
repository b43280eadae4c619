package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront-service/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateNewUser(t *testing.T) {
	store := newSeededStore(t)
	svc := NewAuthService(store, []int64{410375956})

	result := svc.Authenticate(context.Background(), AuthRequest{
		ID:        123456789,
		FirstName: "Тестовый",
		LastName:  "Пользователь",
		Username:  "test_user",
	})

	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.False(t, result.IsAdmin)
	assert.True(t, result.User.FirstSeen.Equal(result.User.LastSeen),
		"first visit stamps firstSeen == lastSeen")

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(123456789), users[0].ID)
}

func TestAuthenticateExistingUserMergesAndRefreshesLastSeen(t *testing.T) {
	store := newSeededStore(t)
	svc := NewAuthService(store, nil)
	ctx := context.Background()

	first := svc.Authenticate(ctx, AuthRequest{ID: 7, FirstName: "Old", Username: "old_handle"})
	require.True(t, first.Success)

	second := svc.Authenticate(ctx, AuthRequest{ID: 7, FirstName: "New", Username: "new_handle"})
	require.True(t, second.Success)

	assert.Equal(t, "New", second.User.FirstName)
	assert.Equal(t, "new_handle", second.User.Username)
	assert.True(t, second.User.FirstSeen.Equal(first.User.FirstSeen), "firstSeen is preserved")
	assert.False(t, second.User.LastSeen.Before(first.User.LastSeen))

	users, err := store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 1, "upsert never duplicates a user")
}

func TestAuthenticateAdminAllowList(t *testing.T) {
	store := newSeededStore(t)
	svc := NewAuthService(store, []int64{410375956})

	admin := svc.Authenticate(context.Background(), AuthRequest{ID: 410375956, FirstName: "Admin"})
	require.True(t, admin.Success)
	assert.True(t, admin.IsAdmin)

	assert.True(t, svc.IsAdmin(410375956))
	assert.False(t, svc.IsAdmin(1))
}

func TestAuthenticateStoreFailureIsNonFatal(t *testing.T) {
	// Point the store at a path that is a regular file so every write
	// fails.
	dir := t.TempDir()
	broken := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(broken, []byte("x"), 0o644))

	svc := NewAuthService(repository.NewStore(broken), []int64{410375956})
	result := svc.Authenticate(context.Background(), AuthRequest{ID: 410375956})

	assert.False(t, result.Success)
	assert.False(t, result.IsAdmin, "failed auth never grants admin")
	assert.Nil(t, result.User)
}
