package model

import "context"

// ContextManager carries the authenticated publisher through a request.
type ContextManager interface {
	SetPublisherToContext(ctx context.Context, publisher string) context.Context
	GetPublisherFromContext(ctx context.Context) (string, bool)
}
