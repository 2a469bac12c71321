package scope

import "context"

type payloadKey struct{}

// SetPayloadToContext stores the verified token payload.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}
