package repository

import (
	"context"

	"healthhub/internal/domain/entity"
)

type FacilityRepository interface {
	Search(ctx context.Context, query entity.FacilityQuery) ([]entity.Facility, error)
}
