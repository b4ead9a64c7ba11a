// Package requestcontext provides transport-independent context accessors for
// call-scoped values.
//
// The execution environment authenticates the caller and tracks the logical
// height of the registry; both are injected into the context before an
// operation runs and consumed by services. Keeping this package free of
// transport dependencies lets services import only what they need.
//
// Usage in services (read values):
//
//	caller := requestcontext.Caller(ctx)
//	height := requestcontext.Height(ctx)
//
// Usage in the environment shim or tests (set values):
//
//	ctx = requestcontext.WithCaller(ctx, identity)
//	ctx = requestcontext.WithHeight(ctx, 42)
package requestcontext

import (
	"context"

	id "docregistry/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	callerKey struct{}
	heightKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyCaller = callerKey{}
	ContextKeyHeight = heightKey{}
)

// Caller retrieves the authenticated caller identity from the context.
// Returns the zero identity if not set.
func Caller(ctx context.Context) id.Identity {
	if caller, ok := ctx.Value(ContextKeyCaller).(id.Identity); ok {
		return caller
	}
	return id.Identity{}
}

// WithCaller injects the authenticated caller identity into the context.
func WithCaller(ctx context.Context, caller id.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyCaller, caller)
}

// Height retrieves the current logical height from the context. Returns zero
// if not set; the environment guarantees a monotonically increasing value for
// real calls.
func Height(ctx context.Context) uint64 {
	if h, ok := ctx.Value(ContextKeyHeight).(uint64); ok {
		return h
	}
	return 0
}

// WithHeight injects the current logical height into the context.
func WithHeight(ctx context.Context, height uint64) context.Context {
	return context.WithValue(ctx, ContextKeyHeight, height)
}
