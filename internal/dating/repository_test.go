package dating

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/soulconnect-backend/internal/common/database"
	"github.com/imadgeboyega/soulconnect-backend/internal/common/logger"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewMemoryRepository(MockProfiles(fixedNow))
	require.NoError(t, err)

	p, err := repo.GetProfile(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Marcus Rodriguez", p.Name)

	_, err = repo.GetProfile(ctx, "99")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	all, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, DemoUserID, all[0].ID)

	// The returned slice is a copy.
	all[0] = nil
	again, _ := repo.ListProfiles(ctx)
	assert.NotNil(t, again[0])
}

func TestNewMemoryRepository_Rejects(t *testing.T) {
	_, err := NewMemoryRepository([]*UserProfile{newProfile("a"), newProfile("a")})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewMemoryRepository([]*UserProfile{newProfile("a", withAgeRange(35, 25))})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestPostgresRepository(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgresDBFromURL(ctx, databaseURL)
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db, logger.Discard())
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = db.ExecContext(ctx, `TRUNCATE profiles`)
	require.NoError(t, err)

	n, err := repo.Seed(ctx, MockProfiles(fixedNow))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = repo.Seed(ctx, MockProfiles(fixedNow))
	require.NoError(t, err)
	assert.Zero(t, n, "seeding twice is a no-op")

	alex, err := repo.GetProfile(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Travel", "Photography", "Hiking", "Coffee", "Dogs", "Music"}, alex.Interests)
	assert.Equal(t, AgeRange{Min: 25, Max: 35}, alex.Preferences.AgeRange)

	_, err = repo.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	// Rows that fail validation are skipped on list.
	_, err = db.ExecContext(ctx, `INSERT INTO profiles (id, name, age, relationship_type, age_min, age_max, max_distance)
		VALUES ('bad', 'Bad Row', 30, 'serious', 40, 20, 10)`)
	require.NoError(t, err)

	all, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, DemoUserID, all[0].ID)

	_, err = repo.GetProfile(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	matches := GenerateMatches(alex, all)
	assert.Equal(t, "match-4", matches[0].ID)
}
