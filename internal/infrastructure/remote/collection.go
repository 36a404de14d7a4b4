package remote

import (
	"context"
	"fmt"

	"healthhub/pkg/apperror"
)

// Collection is a typed view of one remote resource kind.
type Collection[T any] struct {
	client *Client
	kind   Kind
}

func NewCollection[T any](client *Client, kind Kind) *Collection[T] {
	return &Collection[T]{client: client, kind: kind}
}

func (c *Collection[T]) Kind() Kind {
	return c.kind
}

// List fetches the collection in server order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.Search(ctx, nil)
}

// Search fetches the collection through its list route with a request body.
func (c *Collection[T]) Search(ctx context.Context, query interface{}) ([]T, error) {
	body, err := c.client.execute(ctx, c.kind, opList, "", query)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[T](body)
	if err != nil {
		return nil, c.parseError(opList, err)
	}
	return items, nil
}

// Get fetches a single record through the list route.
func (c *Collection[T]) Get(ctx context.Context) (*T, error) {
	body, err := c.client.execute(ctx, c.kind, opList, "", nil)
	if err != nil {
		return nil, err
	}
	item, err := decodeOne[T](body)
	if err != nil {
		return nil, c.parseError(opList, err)
	}
	return item, nil
}

// Create posts payload and returns the record the server created. The item
// is nil when the server acknowledged with a JSON value that is not an object.
func (c *Collection[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	body, err := c.client.execute(ctx, c.kind, opCreate, "", payload)
	if err != nil {
		return nil, err
	}
	item, err := decodeCreated[T](body)
	if err != nil {
		return nil, c.parseError(opCreate, err)
	}
	return item, nil
}

// Remove deletes the record with the given server identifier. The response
// body is ignored.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	_, err := c.client.execute(ctx, c.kind, opDelete, id, nil)
	return err
}

func (c *Collection[T]) parseError(op operation, err error) error {
	endpoints, _ := c.client.endpointsFor(c.kind)
	return apperror.NewTransportError(fmt.Sprintf("%s %s", op, c.kind), endpoints.defaultMessage(op), err)
}
