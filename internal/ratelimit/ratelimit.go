// Package ratelimit throttles calculator requests per client.
package ratelimit

import "context"

// Limiter decides whether the client identified by key may make a request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
