package repository

import "context"

// ResourceRepository is a remote collection of list entities.
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload interface{}) (*T, error)
	Remove(ctx context.Context, id string) error
}
