package usecase

import (
	"context"
	"errors"
	"testing"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFacilityRepository struct {
	results []entity.Facility
	err     error
	queries []entity.FacilityQuery
}

func (f *fakeFacilityRepository) Search(ctx context.Context, query entity.FacilityQuery) ([]entity.Facility, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func coordinate(v float64) *float64 {
	return &v
}

func TestFacilitySearch(t *testing.T) {
	request := &dto.FacilitySearchRequest{Latitude: coordinate(6.5), Longitude: coordinate(3.4), Type: "Pharmacy"}

	t.Run("Search Sends Coordinates And Type", func(t *testing.T) {
		repo := &fakeFacilityRepository{results: []entity.Facility{{Name: "Corner Pharmacy"}}}
		search := NewFacilitySearch(repo, testValidator, testLogger())

		results, err := search.Search(context.Background(), request)
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, entity.FacilityQuery{Latitude: 6.5, Longitude: 3.4, Type: entity.FacilityType("Pharmacy")}, repo.queries[0])
		assert.Len(t, search.View().Results, 1)
	})

	t.Run("Unknown Type Is Rejected Before The Remote Call", func(t *testing.T) {
		repo := &fakeFacilityRepository{}
		search := NewFacilitySearch(repo, testValidator, testLogger())

		_, err := search.Search(context.Background(), &dto.FacilitySearchRequest{Type: "Spa"})
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, repo.queries)
	})

	t.Run("Missing Coordinates Are Rejected", func(t *testing.T) {
		repo := &fakeFacilityRepository{}
		search := NewFacilitySearch(repo, testValidator, testLogger())

		_, err := search.Search(context.Background(), &dto.FacilitySearchRequest{Type: "Clinic"})
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "latitude is required", validationErr.Fields["latitude"])
		assert.Equal(t, "longitude is required", validationErr.Fields["longitude"])
		assert.Empty(t, repo.queries)
	})

	t.Run("Zero Is A Valid Coordinate", func(t *testing.T) {
		repo := &fakeFacilityRepository{}
		search := NewFacilitySearch(repo, testValidator, testLogger())

		_, err := search.Search(context.Background(), &dto.FacilitySearchRequest{Latitude: coordinate(0), Longitude: coordinate(0), Type: "Clinic"})
		require.NoError(t, err)
		assert.Len(t, repo.queries, 1)
	})

	t.Run("Out Of Range Latitude Is Rejected", func(t *testing.T) {
		repo := &fakeFacilityRepository{}
		search := NewFacilitySearch(repo, testValidator, testLogger())

		_, err := search.Search(context.Background(), &dto.FacilitySearchRequest{Latitude: coordinate(91), Longitude: coordinate(0), Type: "Clinic"})
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "latitude")
	})

	t.Run("Denial Disables Search Until Mount", func(t *testing.T) {
		repo := &fakeFacilityRepository{}
		search := NewFacilitySearch(repo, testValidator, testLogger())

		search.DenyGeolocation()
		_, err := search.Search(context.Background(), request)
		assert.ErrorIs(t, err, ErrGeolocationDenied)
		_, err = search.Search(context.Background(), request)
		assert.ErrorIs(t, err, ErrGeolocationDenied)
		assert.Empty(t, repo.queries)
		assert.True(t, search.View().GeolocationDenied)

		search.Mount()
		_, err = search.Search(context.Background(), request)
		require.NoError(t, err)
		assert.False(t, search.View().GeolocationDenied)
	})

	t.Run("Remote Failure Keeps Previous Results", func(t *testing.T) {
		repo := &fakeFacilityRepository{results: []entity.Facility{{Name: "Clinic"}}}
		search := NewFacilitySearch(repo, testValidator, testLogger())
		_, err := search.Search(context.Background(), request)
		require.NoError(t, err)

		repo.err = apperror.NewTransportError("load facility", "Failed to load facilities", errors.New("timeout"))
		_, err = search.Search(context.Background(), request)
		require.Error(t, err)

		view := search.View()
		assert.Len(t, view.Results, 1)
		assert.Equal(t, "Failed to load facilities", view.Error)
	})
}
