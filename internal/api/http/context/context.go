package context

import (
	"context"
)

type publisherKey struct{}

// Manager stores the authenticated publisher in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPublisherToContext returns a copy of ctx carrying publisher.
func (m *Manager) SetPublisherToContext(ctx context.Context, publisher string) context.Context {
	return context.WithValue(ctx, publisherKey{}, publisher)
}

// GetPublisherFromContext returns the publisher set by SetPublisherToContext.
// Empty values are reported as absent.
func (m *Manager) GetPublisherFromContext(ctx context.Context) (string, bool) {
	publisher, ok := ctx.Value(publisherKey{}).(string)
	if !ok || publisher == "" {
		return "", false
	}
	return publisher, true
}
