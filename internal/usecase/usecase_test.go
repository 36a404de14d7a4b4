package usecase

import (
	"context"
	"io"
	"sync"

	"healthhub/internal/domain/entity"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var testValidator = validator.NewValidator()

// fakeRepository is an in-memory remote collection.
type fakeRepository[T any] struct {
	mu        sync.Mutex
	items     []T
	listErr   error
	createErr error
	removeErr error
	created   []interface{}
	removed   []string
	onCreate  func(payload interface{}) T
}

func (f *fakeRepository[T]) List(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]T{}, f.items...), nil
}

func (f *fakeRepository[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, payload)
	var item T
	if f.onCreate != nil {
		item = f.onCreate(payload)
		f.items = append(f.items, item)
	}
	return &item, nil
}

func (f *fakeRepository[T]) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, id)
	return nil
}

func appointment(id, notifyAt string, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:       id,
		Title:    "Visit " + id,
		NotifyAt: entity.ParseTimestamp(notifyAt),
		Status:   status,
	}
}
