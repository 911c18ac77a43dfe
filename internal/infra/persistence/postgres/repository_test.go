package postgres

import (
	"context"
	"testing"
	"time"

	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testSchema mirrors the migrated tables without the PostgreSQL-only column types and defaults.
var testSchema = []string{
	`CREATE TABLE favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		place_id TEXT NOT NULL,
		snapshot TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, place_id)
	)`,
	`CREATE TABLE spins (
		id TEXT PRIMARY KEY,
		owner_id TEXT,
		seed TEXT NOT NULL,
		options TEXT NOT NULL,
		selected_id TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func ptr[T any](v T) *T {
	return &v
}

func TestFavoriteRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("same place twice keeps one refreshed entry", func(t *testing.T) {
		repo := NewFavoriteRepository(newTestDB(t))
		userID := uuid.Must(uuid.NewV7())

		first := &entity.Favorite{
			UserID:   userID,
			PlaceID:  "ChIJthai",
			Snapshot: entity.PlaceSnapshot{Name: "Thai Palace", Rating: ptr(4.1)},
		}
		require.NoError(t, repo.Upsert(ctx, first))
		require.NotEqual(t, uuid.Nil, first.ID)

		second := &entity.Favorite{
			UserID:  userID,
			PlaceID: "ChIJthai",
			Snapshot: entity.PlaceSnapshot{
				Name:      "Thai Palace Express",
				Address:   ptr("12 Main St, Kansas City, MO"),
				Rating:    ptr(4.6),
				PriceTier: ptr(2),
			},
		}
		require.NoError(t, repo.Upsert(ctx, second))

		favorites, err := repo.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, favorites, 1)

		got := favorites[0]
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, "ChIJthai", got.PlaceID)
		assert.Equal(t, "Thai Palace Express", got.Snapshot.Name)
		assert.Equal(t, "12 Main St, Kansas City, MO", *got.Snapshot.Address)
		assert.InDelta(t, 4.6, *got.Snapshot.Rating, 1e-9)
		assert.Equal(t, 2, *got.Snapshot.PriceTier)
	})

	t.Run("entries are scoped to their owner", func(t *testing.T) {
		repo := NewFavoriteRepository(newTestDB(t))
		alice, bob := uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())

		require.NoError(t, repo.Upsert(ctx, &entity.Favorite{UserID: alice, PlaceID: "osm_node_1", Snapshot: entity.PlaceSnapshot{Name: "Taco Stand"}}))
		require.NoError(t, repo.Upsert(ctx, &entity.Favorite{UserID: alice, PlaceID: "osm_node_2", Snapshot: entity.PlaceSnapshot{Name: "Noodle Bar"}}))
		require.NoError(t, repo.Upsert(ctx, &entity.Favorite{UserID: bob, PlaceID: "osm_node_1", Snapshot: entity.PlaceSnapshot{Name: "Taco Stand"}}))

		aliceFavorites, err := repo.ListByUser(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, aliceFavorites, 2)

		bobFavorites, err := repo.ListByUser(ctx, bob)
		require.NoError(t, err)
		assert.Len(t, bobFavorites, 1)
	})
}

func TestFavoriteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoriteRepository(newTestDB(t))
	userID := uuid.Must(uuid.NewV7())

	require.NoError(t, repo.Upsert(ctx, &entity.Favorite{UserID: userID, PlaceID: "osm_way_7", Snapshot: entity.PlaceSnapshot{Name: "Diner"}}))
	require.NoError(t, repo.Delete(ctx, userID, "osm_way_7"))
	require.NoError(t, repo.Delete(ctx, userID, "osm_way_7"))

	favorites, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestSpinRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("redelivered spin keeps the first write", func(t *testing.T) {
		repo := NewSpinRepository(newTestDB(t))
		ownerID := uuid.Must(uuid.NewV7())
		spin := &entity.SpinRecord{
			ID:         uuid.Must(uuid.NewV7()),
			OwnerID:    &ownerID,
			Seed:       "abc123",
			Options:    []entity.Place{{ID: "osm_node_1", Name: "Taco Stand"}, {ID: "osm_node_2", Name: "Noodle Bar"}},
			SelectedID: "osm_node_2",
			CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Create(ctx, spin))

		redelivered := *spin
		redelivered.SelectedID = "osm_node_1"
		require.NoError(t, repo.Create(ctx, &redelivered))

		got, err := repo.FindByID(ctx, spin.ID)
		require.NoError(t, err)
		assert.Equal(t, "osm_node_2", got.SelectedID)
		assert.Equal(t, "abc123", got.Seed)
		require.Len(t, got.Options, 2)
		assert.Equal(t, "Noodle Bar", got.Options[1].Name)

		history, err := repo.ListByOwner(ctx, ownerID, 50)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("anonymous spins have no owner", func(t *testing.T) {
		repo := NewSpinRepository(newTestDB(t))
		spin := &entity.SpinRecord{
			ID:         uuid.Must(uuid.NewV7()),
			Seed:       "tacos",
			Options:    []entity.Place{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
			SelectedID: "a",
		}
		require.NoError(t, repo.Create(ctx, spin))

		got, err := repo.FindByID(ctx, spin.ID)
		require.NoError(t, err)
		assert.Nil(t, got.OwnerID)
	})
}

func TestSpinRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewSpinRepository(newTestDB(t))
	ownerID := uuid.Must(uuid.NewV7())
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, seed := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.SpinRecord{
			ID:         uuid.Must(uuid.NewV7()),
			OwnerID:    &ownerID,
			Seed:       seed,
			Options:    []entity.Place{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
			SelectedID: "b",
			CreatedAt:  start.Add(time.Duration(i) * time.Minute),
		}))
	}

	history, err := repo.ListByOwner(ctx, ownerID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "third", history[0].Seed)
	assert.Equal(t, "second", history[1].Seed)
}

func TestSpinRepository_FindByID_NotFound(t *testing.T) {
	repo := NewSpinRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.Must(uuid.NewV7()))
	assert.True(t, errors.Is(err, repository.ErrSpinNotFound))
}
