package embedding

import (
	"context"
	"errors"
)

// ErrUnauthorized marks embedding failures caused by a rejected credential.
// Clients wrap their provider-specific auth errors with it so the Provider can
// distinguish a dead key from a transient outage.
var ErrUnauthorized = errors.New("embedding credentials rejected")

// Client produces a semantic vector for a piece of text. Implementations wrap
// one concrete embedding API backend.
type Client interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Name() string
	Model() string
}
