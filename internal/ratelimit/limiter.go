package ratelimit

import "context"

// Limiter reports whether the caller identified by key may make another
// request within the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
