package impl

import (
	"context"
	"errors"
	"testing"

	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	mockRepo "justchoose/internal/mocks/repository"
	mockUsecase "justchoose/internal/mocks/usecase"
	"justchoose/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteFixture struct {
	favoriteRepo *mockRepo.MockFavoriteRepository
	gateway      *mockUsecase.MockProviderGateway
	service      usecase.FavoriteUsecase
}

func newFavoriteFixture(t *testing.T) *favoriteFixture {
	f := &favoriteFixture{
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		gateway:      mockUsecase.NewMockProviderGateway(t),
	}
	f.service = NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: f.favoriteRepo,
		Gateway:      f.gateway,
		Logger:       newDiscardLogger(),
	})

	return f
}

func clientSnapshot() entity.PlaceSnapshot {
	return entity.PlaceSnapshot{
		Name:      " Pho Real ",
		Address:   entity.StringPtr("12 Elm St"),
		Rating:    floatPtr(4.2),
		PriceTier: intPtr(2),
	}
}

func TestFavoriteService_Add_FreeCallerKeepsClientSnapshot(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()
	caller := newCaller()

	f.gateway.EXPECT().Choose(ctx, caller).Return(entity.ProviderOpenStreetMap)
	f.favoriteRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)

	out, err := f.service.Add(ctx, caller, &usecase.AddFavoriteInput{PlaceID: "ChIJabc", Snapshot: clientSnapshot()})
	require.NoError(t, err)
	assert.True(t, out.Persisted)
	assert.Equal(t, caller.UserID, out.Favorite.UserID)
	assert.Equal(t, "ChIJabc", out.Favorite.PlaceID)
	assert.Equal(t, "Pho Real", out.Favorite.Snapshot.Name)
}

func TestFavoriteService_Add_OSMPlaceSkipsEnrichment(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()

	f.favoriteRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)

	out, err := f.service.Add(ctx, newCaller(), &usecase.AddFavoriteInput{PlaceID: "osm_node_42", Snapshot: clientSnapshot()})
	require.NoError(t, err)
	assert.True(t, out.Persisted)
}

func TestFavoriteService_Add_PremiumCallerGetsPlaceDetails(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()
	caller := newCaller()
	details := &entity.Place{
		ID:               "ChIJabc",
		Name:             "Pho Real Kitchen",
		Rating:           floatPtr(4.6),
		PriceTier:        intPtr(2),
		FormattedAddress: entity.StringPtr("12 Elm St, Austin, TX"),
	}

	f.gateway.EXPECT().Choose(ctx, caller).Return(entity.ProviderGoogle)
	f.gateway.EXPECT().PlaceDetails(ctx, "ChIJabc").Return(details, nil)
	f.favoriteRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(_ context.Context, favorite *entity.Favorite) {
			assert.Equal(t, details.Snapshot(), favorite.Snapshot)
		}).
		Return(nil)

	out, err := f.service.Add(ctx, caller, &usecase.AddFavoriteInput{PlaceID: "ChIJabc", Snapshot: clientSnapshot()})
	require.NoError(t, err)
	assert.Equal(t, "Pho Real Kitchen", out.Favorite.Snapshot.Name)
	assert.Equal(t, "12 Elm St, Austin, TX", *out.Favorite.Snapshot.Address)
}

func TestFavoriteService_Add_DetailsFailureKeepsClientSnapshot(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()
	caller := newCaller()

	f.gateway.EXPECT().Choose(ctx, caller).Return(entity.ProviderGoogle)
	f.gateway.EXPECT().PlaceDetails(ctx, "ChIJabc").Return(nil, domainerrors.ErrProviderQuota)
	f.favoriteRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)

	out, err := f.service.Add(ctx, caller, &usecase.AddFavoriteInput{PlaceID: "ChIJabc", Snapshot: clientSnapshot()})
	require.NoError(t, err)
	assert.Equal(t, "Pho Real", out.Favorite.Snapshot.Name)
}

func TestFavoriteService_Add_WriteFailureIsNotAnError(t *testing.T) {
	f := newFavoriteFixture(t)
	ctx := context.Background()
	caller := newCaller()

	f.gateway.EXPECT().Choose(ctx, caller).Return(entity.ProviderOpenStreetMap)
	f.favoriteRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("db down"))

	out, err := f.service.Add(ctx, caller, &usecase.AddFavoriteInput{PlaceID: "ChIJabc", Snapshot: clientSnapshot()})
	require.NoError(t, err)
	assert.False(t, out.Persisted)
	assert.Equal(t, "ChIJabc", out.Favorite.PlaceID)
}

func TestFavoriteService_Add_Validation(t *testing.T) {
	tests := []struct {
		name    string
		caller  *entity.Caller
		input   *usecase.AddFavoriteInput
		wantErr error
	}{
		{"anonymous", nil, &usecase.AddFavoriteInput{PlaceID: "p", Snapshot: clientSnapshot()}, domainerrors.ErrUnauthorized},
		{"missing place id", newCaller(), &usecase.AddFavoriteInput{Snapshot: clientSnapshot()}, domainerrors.ErrValidationFailed},
		{"missing name", newCaller(), &usecase.AddFavoriteInput{PlaceID: "p"}, domainerrors.ErrValidationFailed},
		{"rating above five", newCaller(), &usecase.AddFavoriteInput{PlaceID: "p", Snapshot: entity.PlaceSnapshot{Name: "n", Rating: floatPtr(5.5)}}, domainerrors.ErrValidationFailed},
		{"price tier zero", newCaller(), &usecase.AddFavoriteInput{PlaceID: "p", Snapshot: entity.PlaceSnapshot{Name: "n", PriceTier: intPtr(0)}}, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFavoriteFixture(t)

			out, err := f.service.Add(context.Background(), tt.caller, tt.input)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		f := newFavoriteFixture(t)
		caller := newCaller()
		f.favoriteRepo.EXPECT().Delete(ctx, caller.UserID, "ChIJabc").Return(nil)

		persisted, err := f.service.Remove(ctx, caller, " ChIJabc ")
		require.NoError(t, err)
		assert.True(t, persisted)
	})

	t.Run("write failure is reported as not persisted", func(t *testing.T) {
		f := newFavoriteFixture(t)
		caller := newCaller()
		f.favoriteRepo.EXPECT().Delete(ctx, caller.UserID, "ChIJabc").Return(errors.New("db down"))

		persisted, err := f.service.Remove(ctx, caller, "ChIJabc")
		require.NoError(t, err)
		assert.False(t, persisted)
	})

	t.Run("requires place id", func(t *testing.T) {
		f := newFavoriteFixture(t)

		_, err := f.service.Remove(ctx, newCaller(), "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("requires authentication", func(t *testing.T) {
		f := newFavoriteFixture(t)

		_, err := f.service.Remove(ctx, nil, "ChIJabc")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestFavoriteService_List(t *testing.T) {
	ctx := context.Background()
	f := newFavoriteFixture(t)
	caller := newCaller()
	favorites := []*entity.Favorite{{ID: uuid.New(), UserID: caller.UserID, PlaceID: "ChIJabc"}}

	f.favoriteRepo.EXPECT().ListByUser(ctx, caller.UserID).Return(favorites, nil)

	got, err := f.service.List(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)

	_, err = f.service.List(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
