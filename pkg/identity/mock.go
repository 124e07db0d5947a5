package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tableflip.dev/academia/pkg/logging"
	"tableflip.dev/academia/pkg/store"
)

// SessionKey is the medium key holding the serialized current identity.
const SessionKey = "authUser"

// uidPrefix makes mock identities deterministic per email.
const uidPrefix = "mock-uid-"

// ErrInvalidCredentials is returned when the email or password fail basic
// validation. The mock never checks the password itself.
var ErrInvalidCredentials = errors.New("identity: invalid credentials")

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Mock is a Provider that accepts any well-formed email/password pair and
// keeps the session as one record in the medium.
type Mock struct {
	Medium store.Medium
	Logger *zap.Logger

	validate *validator.Validate

	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

var _ Provider = (*Mock)(nil)

// NewMock returns a mock provider over m.
func NewMock(m store.Medium, logger *zap.Logger) *Mock {
	return &Mock{
		Medium:   m,
		Logger:   logging.OrNop(logger),
		validate: validator.New(),
		subs:     make(map[chan struct{}]struct{}),
	}
}

// Current reads the session record. A missing or corrupt record resolves to
// guest.
func (m *Mock) Current(_ context.Context) (*Identity, error) {
	raw, err := m.Medium.Get(SessionKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil || id.UID == "" {
		m.log().Warn("discarding unreadable session", zap.Error(err))
		return nil, nil
	}
	return &id, nil
}

// Login signs in as email. Any password is accepted.
func (m *Mock) Login(ctx context.Context, email, password string) (*Identity, error) {
	m.log().Info("logging in", zap.String("email", email))
	return m.signIn(ctx, email, password)
}

// Signup is identical to Login for the mock.
func (m *Mock) Signup(ctx context.Context, email, password string) (*Identity, error) {
	m.log().Info("signing up", zap.String("email", email))
	return m.signIn(ctx, email, password)
}

// Logout clears the session record; the caller becomes guest.
func (m *Mock) Logout(_ context.Context) error {
	m.log().Info("logging out")
	if err := m.Medium.Remove(SessionKey); err != nil {
		return fmt.Errorf("identity: clear session: %w", err)
	}
	m.poke()
	return nil
}

func (m *Mock) signIn(_ context.Context, email, password string) (*Identity, error) {
	email = strings.TrimSpace(email)
	if err := m.validator().Struct(credentials{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	id := &Identity{UID: uidPrefix + email, Email: email}
	raw, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	if err := m.Medium.Set(SessionKey, string(raw)); err != nil {
		return nil, fmt.Errorf("identity: store session: %w", err)
	}
	m.poke()
	return id, nil
}

func (m *Mock) validator() *validator.Validate {
	if m.validate == nil {
		m.validate = validator.New()
	}
	return m.validate
}

// Watch delivers the initial resolution and then every identity change,
// whether made through this Mock or, for file media, by another process.
func (m *Mock) Watch(ctx context.Context) (<-chan Change, error) {
	pokes := make(chan struct{}, 1)
	m.mu.Lock()
	if m.subs == nil {
		m.subs = make(map[chan struct{}]struct{})
	}
	m.subs[pokes] = struct{}{}
	m.mu.Unlock()

	var external <-chan store.Event
	if w, ok := m.Medium.(store.Watcher); ok {
		ch, err := w.Watch(ctx, SessionKey)
		if err != nil {
			m.unsubscribe(pokes)
			return nil, fmt.Errorf("identity: watch session: %w", err)
		}
		external = ch
	}

	out := make(chan Change, 4)
	go func() {
		defer close(out)
		defer m.unsubscribe(pokes)

		last, err := m.Current(ctx)
		if err != nil {
			m.log().Warn("resolving identity failed, continuing as guest", zap.Error(err))
		}
		select {
		case out <- Change{Current: last, Initial: true}:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-pokes:
			case _, ok := <-external:
				if !ok {
					external = nil
					continue
				}
			}
			cur, err := m.Current(ctx)
			if err != nil {
				m.log().Warn("re-resolving identity failed", zap.Error(err))
				continue
			}
			if Same(last, cur) {
				continue
			}
			select {
			case out <- Change{Previous: last, Current: cur}:
				last = cur
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (m *Mock) poke() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (m *Mock) unsubscribe(ch chan struct{}) {
	m.mu.Lock()
	delete(m.subs, ch)
	m.mu.Unlock()
}

func (m *Mock) log() *zap.Logger {
	return logging.OrNop(m.Logger)
}
