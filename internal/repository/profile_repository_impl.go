package repository

import (
	"context"

	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/internal/infrastructure/remote"
)

type profileRepository struct {
	users *remote.Collection[entity.User]
}

func NewProfileRepository(client *remote.Client) repository.ProfileRepository {
	return &profileRepository{users: remote.NewCollection[entity.User](client, remote.KindUser)}
}

// Signup creates the account. The remote answer body is not needed by the
// caller, a parse failure still counts as a failed signup.
func (r *profileRepository) Signup(ctx context.Context, registration *entity.Registration) error {
	_, err := r.users.Create(ctx, registration)
	return err
}

func (r *profileRepository) FindCurrent(ctx context.Context) (*entity.User, error) {
	return r.users.Get(ctx)
}
