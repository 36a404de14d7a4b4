package repository

import (
	"context"

	"healthhub/internal/domain/entity"
)

type ProfileRepository interface {
	Signup(ctx context.Context, registration *entity.Registration) error
	FindCurrent(ctx context.Context) (*entity.User, error)
}
