package dating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrProfileNotFound = errors.New("profile not found")

// Repository supplies the reference user and the candidate pool.
type Repository interface {
	GetProfile(ctx context.Context, id string) (*UserProfile, error)
	ListProfiles(ctx context.Context) ([]*UserProfile, error)
}

// In-memory repository

type memoryRepository struct {
	mu       sync.RWMutex
	profiles []*UserProfile
	byID     map[string]*UserProfile
}

// NewMemoryRepository holds the given profiles in insertion order. Invalid
// profiles are rejected up front.
func NewMemoryRepository(profiles []*UserProfile) (Repository, error) {
	repo := &memoryRepository{byID: make(map[string]*UserProfile, len(profiles))}
	for _, p := range profiles {
		if err := ValidateProfile(p); err != nil {
			return nil, err
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidProfile, p.ID)
		}
		repo.byID[p.ID] = p
		repo.profiles = append(repo.profiles, p)
	}
	return repo, nil
}

// NewMockRepository serves the demo dataset.
func NewMockRepository() Repository {
	repo, err := NewMemoryRepository(MockProfiles(time.Now()))
	if err != nil {
		panic(err)
	}
	return repo
}

func (r *memoryRepository) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (r *memoryRepository) ListProfiles(ctx context.Context) ([]*UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*UserProfile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

// PostgreSQL repository

const profilesSchema = `
CREATE TABLE IF NOT EXISTS profiles (
    position            SERIAL,
    id                  TEXT PRIMARY KEY,
    name                TEXT NOT NULL,
    age                 INTEGER NOT NULL,
    photos              TEXT[] NOT NULL DEFAULT '{}',
    bio                 TEXT NOT NULL DEFAULT '',
    interests           TEXT[] NOT NULL DEFAULT '{}',
    location            TEXT NOT NULL DEFAULT '',
    occupation          TEXT NOT NULL DEFAULT '',
    education           TEXT NOT NULL DEFAULT '',
    relationship_type   TEXT NOT NULL,
    age_min             INTEGER NOT NULL,
    age_max             INTEGER NOT NULL,
    max_distance        DOUBLE PRECISION NOT NULL,
    interested_in       TEXT[] NOT NULL DEFAULT '{}',
    deal_breakers       TEXT[] NOT NULL DEFAULT '{}',
    important_qualities TEXT[] NOT NULL DEFAULT '{}',
    is_online           BOOLEAN NOT NULL DEFAULT FALSE,
    last_active         TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const profileColumns = `id, name, age, photos, bio, interests, location, occupation, education,
    relationship_type, age_min, age_max, max_distance, interested_in, deal_breakers,
    important_qualities, is_online, last_active`

// profileRow is the flattened table layout of a UserProfile.
type profileRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Age                int            `db:"age"`
	Photos             pq.StringArray `db:"photos"`
	Bio                string         `db:"bio"`
	Interests          pq.StringArray `db:"interests"`
	Location           string         `db:"location"`
	Occupation         string         `db:"occupation"`
	Education          string         `db:"education"`
	RelationshipType   string         `db:"relationship_type"`
	AgeMin             int            `db:"age_min"`
	AgeMax             int            `db:"age_max"`
	MaxDistance        float64        `db:"max_distance"`
	InterestedIn       pq.StringArray `db:"interested_in"`
	DealBreakers       pq.StringArray `db:"deal_breakers"`
	ImportantQualities pq.StringArray `db:"important_qualities"`
	IsOnline           bool           `db:"is_online"`
	LastActive         time.Time      `db:"last_active"`
}

func (row *profileRow) toProfile() *UserProfile {
	return &UserProfile{
		ID:               row.ID,
		Name:             row.Name,
		Age:              row.Age,
		Photos:           []string(row.Photos),
		Bio:              row.Bio,
		Interests:        []string(row.Interests),
		Location:         row.Location,
		Occupation:       row.Occupation,
		Education:        row.Education,
		RelationshipType: row.RelationshipType,
		Preferences: Preferences{
			AgeRange:           AgeRange{Min: row.AgeMin, Max: row.AgeMax},
			MaxDistance:        row.MaxDistance,
			InterestedIn:       []string(row.InterestedIn),
			DealBreakers:       []string(row.DealBreakers),
			ImportantQualities: []string(row.ImportantQualities),
		},
		IsOnline:   row.IsOnline,
		LastActive: row.LastActive,
	}
}

func rowFromProfile(p *UserProfile) *profileRow {
	return &profileRow{
		ID:                 p.ID,
		Name:               p.Name,
		Age:                p.Age,
		Photos:             pq.StringArray(p.Photos),
		Bio:                p.Bio,
		Interests:          pq.StringArray(p.Interests),
		Location:           p.Location,
		Occupation:         p.Occupation,
		Education:          p.Education,
		RelationshipType:   p.RelationshipType,
		AgeMin:             p.Preferences.AgeRange.Min,
		AgeMax:             p.Preferences.AgeRange.Max,
		MaxDistance:        p.Preferences.MaxDistance,
		InterestedIn:       pq.StringArray(p.Preferences.InterestedIn),
		DealBreakers:       pq.StringArray(p.Preferences.DealBreakers),
		ImportantQualities: pq.StringArray(p.Preferences.ImportantQualities),
		IsOnline:           p.IsOnline,
		LastActive:         p.LastActive,
	}
}

type PostgresRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostgresRepository(db *sqlx.DB, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

// EnsureSchema creates the profiles table if it is missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, profilesSchema); err != nil {
		return fmt.Errorf("create profiles table: %w", err)
	}
	return nil
}

// Seed inserts profiles that are not already stored. It returns how many
// rows were written.
func (r *PostgresRepository) Seed(ctx context.Context, profiles []*UserProfile) (int, error) {
	query := `
        INSERT INTO profiles (` + profileColumns + `)
        VALUES (:id, :name, :age, :photos, :bio, :interests, :location, :occupation, :education,
            :relationship_type, :age_min, :age_max, :max_distance, :interested_in, :deal_breakers,
            :important_qualities, :is_online, :last_active)
        ON CONFLICT (id) DO NOTHING
    `

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, p := range profiles {
		if err := ValidateProfile(p); err != nil {
			return 0, err
		}
		res, err := tx.NamedExecContext(ctx, query, rowFromProfile(p))
		if err != nil {
			return 0, fmt.Errorf("seed profile %q: %w", p.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return inserted, nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %q: %w", id, err)
	}

	p := row.toProfile()
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProfiles returns every stored profile in insertion order. Rows that
// fail validation are skipped and logged.
func (r *PostgresRepository) ListProfiles(ctx context.Context) ([]*UserProfile, error) {
	var rows []profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY position`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	profiles := make([]*UserProfile, 0, len(rows))
	for i := range rows {
		p := rows[i].toProfile()
		if err := ValidateProfile(p); err != nil {
			r.logger.Warn("skipping invalid profile", "id", p.ID, "error", err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
