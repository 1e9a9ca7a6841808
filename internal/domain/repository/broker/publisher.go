package broker

import "context"

// Publisher emits lifecycle events (blog/category created, updated, deleted)
// for downstream consumers such as cache invalidators and search indexers.
type Publisher interface {
	Publish(ctx context.Context, event, entityID string) error
}
