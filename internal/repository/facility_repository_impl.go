package repository

import (
	"context"

	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/infrastructure/remote"
)

type facilityRepository struct {
	facilities *remote.Collection[entity.Facility]
}

func NewFacilityRepository(client *remote.Client) repository.FacilityRepository {
	return &facilityRepository{facilities: remote.NewCollection[entity.Facility](client, remote.KindFacility)}
}

func (r *facilityRepository) Search(ctx context.Context, query entity.FacilityQuery) ([]entity.Facility, error) {
	return r.facilities.Search(ctx, query)
}
