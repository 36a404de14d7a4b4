package usecase

import (
	"context"
	"sync"

	"healthhub/internal/domain/repository"
	"healthhub/pkg/apperror"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
)

// ListState is the lifecycle of a list view: Idle -> Loading -> Loaded|Failed.
type ListState string

const (
	ListStateIdle    ListState = "idle"
	ListStateLoading ListState = "loading"
	ListStateLoaded  ListState = "loaded"
	ListStateFailed  ListState = "failed"
)

// Identifiable is a list entity carrying its server assigned identifier.
type Identifiable interface {
	Identifier() string
}

// ListSnapshot is a copy of a controller's state, safe to read without locks.
type ListSnapshot[T any, P any] struct {
	State ListState
	Items []T
	Error string
	Form  P
}

// ResourceListController holds the in-memory list of one resource kind and
// reconciles it with the remote collection. T is the entity, P the create
// form payload.
//
// The lock is held only while state is read or replaced, never across a
// remote call. Two concurrent mounts both complete and the one finishing
// last decides the list.
type ResourceListController[T Identifiable, P any] struct {
	mu        sync.Mutex
	name      string
	repo      repository.ResourceRepository[T]
	validator *validator.CustomValidator
	log       *logrus.Logger

	state ListState
	items []T
	err   string
	form  P
}

func NewResourceListController[T Identifiable, P any](
	name string,
	repo repository.ResourceRepository[T],
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *ResourceListController[T, P] {
	return &ResourceListController[T, P]{
		name:      name,
		repo:      repo,
		validator: validator,
		log:       log,
		state:     ListStateIdle,
		items:     []T{},
	}
}

// Mount fetches the list. On failure the list is emptied and the error
// message kept for display.
func (c *ResourceListController[T, P]) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.state = ListStateLoading
	c.mu.Unlock()

	items, err := c.repo.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.WithError(err).Warnf("Failed to load %s", c.name)
		c.state = ListStateFailed
		c.items = []T{}
		c.err = apperror.UserMessage(err)
		return err
	}

	if items == nil {
		items = []T{}
	}
	c.state = ListStateLoaded
	c.items = items
	c.err = ""
	return nil
}

// Create validates payload, posts it and refreshes the whole list. The form
// is cleared only when the remote call succeeded. A failed refresh after a
// successful create is reported through the snapshot, not the return value.
func (c *ResourceListController[T, P]) Create(ctx context.Context, payload P) error {
	c.mu.Lock()
	c.form = payload
	c.mu.Unlock()

	if err := c.validator.Validate(&payload); err != nil {
		c.fail(err)
		return err
	}

	if _, err := c.repo.Create(ctx, &payload); err != nil {
		c.log.WithError(err).Warnf("Failed to create %s", c.name)
		c.fail(err)
		return err
	}

	c.mu.Lock()
	var empty P
	c.form = empty
	c.err = ""
	c.mu.Unlock()

	c.log.Infof("Created %s, refreshing list", c.name)
	_ = c.Mount(ctx)
	return nil
}

// Remove deletes id remotely and then drops every local entry carrying it.
// Local state is untouched when the remote delete fails.
func (c *ResourceListController[T, P]) Remove(ctx context.Context, id string) error {
	if err := c.repo.Remove(ctx, id); err != nil {
		c.log.WithError(err).Warnf("Failed to delete %s %s", c.name, id)
		c.fail(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = withoutID(c.items, id)
	c.err = ""
	return nil
}

// Filter returns the entries matching keep, in list order.
func (c *ResourceListController[T, P]) Filter(keep func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *ResourceListController[T, P]) Snapshot() ListSnapshot[T, P] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return ListSnapshot[T, P]{State: c.state, Items: items, Error: c.err, Form: c.form}
}

// Reset drops everything back to Idle, used when the session logs out.
func (c *ResourceListController[T, P]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var empty P
	c.state = ListStateIdle
	c.items = []T{}
	c.err = ""
	c.form = empty
}

func (c *ResourceListController[T, P]) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = apperror.UserMessage(err)
}

func withoutID[T Identifiable](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Identifier() != id {
			out = append(out, item)
		}
	}
	return out
}
