package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auction_backend/internal/feature/auth/domain"
	"auction_backend/internal/feature/auth/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError makes gorm surface unique-key violations as
// gorm.ErrDuplicatedKey, the same signal the repository maps for MySQL.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username maps to ErrUsernameTaken", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user1 := &entity.User{Username: "bob", Email: "bob@example.com", Password: "p1"}
		require.NoError(t, repo.Create(context.Background(), user1))

		user2 := &entity.User{Username: "bob", Email: "other@example.com", Password: "p2"}
		err := repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("same email with different username is allowed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		require.NoError(t, repo.Create(context.Background(), &entity.User{
			Username: "carol", Email: "shared@example.com", Password: "p1",
		}))
		err := repo.Create(context.Background(), &entity.User{
			Username: "dave", Email: "shared@example.com", Password: "p2",
		})

		assert.NoError(t, err, "email is not unique")
	})
}

func TestUserMySQL_FindByUsername(t *testing.T) {
	t.Run("find user by username successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := &entity.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, expected.ID, found.ID)
		assert.Equal(t, expected.Username, found.Username)
		assert.Equal(t, expected.Password, found.Password)
	})

	t.Run("username not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByUsername(context.Background(), "nobody")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)

	expected := &entity.User{Username: "alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(context.Background(), expected))

	found, err := repo.FindByID(context.Background(), expected.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
