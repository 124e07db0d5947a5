// Package identity resolves who is using academia. The only implementation
// today is a mock that trusts any email and password.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Identity is a signed-in user. A nil *Identity means guest.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Same reports whether a and b resolve to the same namespace.
func Same(a, b *Identity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.UID == b.UID
}

// String renders the identity for status lines.
func (i *Identity) String() string {
	if i == nil {
		return "guest"
	}
	return i.Email
}

// Change is emitted whenever the resolved identity differs from the last one
// delivered. The first Change on a watch is the initial resolution and has
// Initial set.
type Change struct {
	Previous *Identity
	Current  *Identity
	Initial  bool
}

// Provider is the contract the rest of academia depends on. A credential
// backend can replace the mock without touching the store.
type Provider interface {
	Current(ctx context.Context) (*Identity, error)
	Login(ctx context.Context, email, password string) (*Identity, error)
	Signup(ctx context.Context, email, password string) (*Identity, error)
	Logout(ctx context.Context) error
	Watch(ctx context.Context) (<-chan Change, error)
}

// ErrResolveTimeout is returned by Resolve when the provider does not answer
// in time.
var ErrResolveTimeout = errors.New("identity: resolution timed out")

// Resolve performs the startup identity resolution with a deadline.
func Resolve(ctx context.Context, p Provider, timeout time.Duration) (*Identity, error) {
	if p == nil {
		return nil, errors.New("identity: no provider configured")
	}
	if timeout <= 0 {
		return p.Current(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		id  *Identity
		err error
	}
	done := make(chan result, 1)
	go func() {
		id, err := p.Current(ctx)
		done <- result{id: id, err: err}
	}()

	select {
	case r := <-done:
		if errors.Is(r.err, context.DeadlineExceeded) {
			return nil, ErrResolveTimeout
		}
		if r.err != nil {
			return nil, fmt.Errorf("identity: resolve: %w", r.err)
		}
		return r.id, nil
	case <-ctx.Done():
		return nil, ErrResolveTimeout
	}
}
