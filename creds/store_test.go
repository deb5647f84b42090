package creds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	return db
}

func TestSetAndReadTokens(t *testing.T) {
	store, err := New(openTestDB(t))
	assert.NoError(t, err)

	assert.NoError(t, store.SetTokens("Bearer jwt", "refresh-1"))

	assert.Equal(t, "Bearer jwt", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
}

func TestSetTokensReplacesPreviousPair(t *testing.T) {
	store, err := New(openTestDB(t))
	assert.NoError(t, err)

	assert.NoError(t, store.SetTokens("Bearer one", "refresh-1"))
	assert.NoError(t, store.SetTokens("Bearer two", "refresh-2"))

	assert.Equal(t, "Bearer two", store.AccessToken())
	assert.Equal(t, "refresh-2", store.RefreshToken())
}

func TestClearTokensDropsBoth(t *testing.T) {
	store, err := New(openTestDB(t))
	assert.NoError(t, err)
	assert.NoError(t, store.SetTokens("Bearer jwt", "refresh-1"))

	assert.NoError(t, store.ClearTokens())

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestRefreshTokenSurvivesRestart(t *testing.T) {
	db := openTestDB(t)
	store, err := New(db)
	assert.NoError(t, err)
	assert.NoError(t, store.SetTokens("Bearer jwt", "refresh-1"))

	// A new Store over the same database simulates a process restart: the
	// refresh token is durable, the access token is not.
	reopened, err := New(db)
	assert.NoError(t, err)

	assert.Empty(t, reopened.AccessToken())
	assert.Equal(t, "refresh-1", reopened.RefreshToken())
}

func TestEmptyStore(t *testing.T) {
	store, err := New(openTestDB(t))
	assert.NoError(t, err)

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.NoError(t, store.ClearTokens())
}
