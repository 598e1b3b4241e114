package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RayIDHeader is the header carrying the request correlation id.
const RayIDHeader = "X-Ray-ID"

type rayIDKey struct{}

// ContextWithRayID returns ctx carrying id.
func ContextWithRayID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, rayIDKey{}, id)
}

// RayIDFromContext returns the ray id stored in ctx, if any.
func RayIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(rayIDKey{}).(string)
	return id
}

// EnsureRayID returns ctx unchanged when it already carries a ray id,
// otherwise a derived context with a fresh one.
func EnsureRayID(ctx context.Context) (context.Context, string) {
	if id := RayIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return ContextWithRayID(ctx, id), id
}

// RayID sets the X-Ray-ID header from the request context, generating one if needed.
func RayID() Interceptor {
	return func(req *http.Request) error {
		id := RayIDFromContext(req.Context())
		if id == "" {
			id = uuid.NewString()
		}
		req.Header.Set(RayIDHeader, id)
		return nil
	}
}
