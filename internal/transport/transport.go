// Package transport carries prepared request descriptors over the wire. The
// dispatcher owns credentials, retries and normalization; this layer only
// transmits and reports what came back.
package transport

import (
	"context"

	"github.com/oncoflow/mobilecore/domain"
)

// Transport sends one prepared descriptor and returns the raw response. A nil
// response with an error means no response was received at all; the dispatcher
// classifies that as a network failure and never retries it here.
type Transport interface {
	RoundTrip(ctx context.Context, req domain.Request) (*domain.Response, error)
}

// Func adapts a plain function to the Transport interface.
type Func func(ctx context.Context, req domain.Request) (*domain.Response, error)

func (f Func) RoundTrip(ctx context.Context, req domain.Request) (*domain.Response, error) {
	return f(ctx, req)
}
