package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/academia/pkg/store"
)

func TestMockLoginSignupLogout(t *testing.T) {
	ctx := context.Background()
	m := NewMock(store.NewMemory(), nil)

	cur, err := m.Current(ctx)
	if err != nil || cur != nil {
		t.Fatalf("expected guest, got %v (%v)", cur, err)
	}

	in, err := m.Login(ctx, "user@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if in.UID != "mock-uid-user@example.com" || in.Email != "user@example.com" {
		t.Fatalf("unexpected identity %+v", in)
	}

	up, err := m.Signup(ctx, "user@example.com", "another")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !Same(in, up) {
		t.Fatalf("login and signup should synthesize the same identity")
	}

	cur, _ = m.Current(ctx)
	if !Same(cur, in) {
		t.Fatalf("session should resolve to %v, got %v", in, cur)
	}

	if err := m.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	cur, _ = m.Current(ctx)
	if cur != nil {
		t.Fatalf("expected guest after logout, got %v", cur)
	}
}

func TestMockRejectsMalformedCredentials(t *testing.T) {
	m := NewMock(store.NewMemory(), nil)
	cases := []struct{ email, password string }{
		{"", "pw"},
		{"not-an-email", "pw"},
		{"user@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := m.Login(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%q/%q: expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestMockCorruptSessionResolvesToGuest(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set(SessionKey, "{not json")
	m := NewMock(mem, nil)
	cur, err := m.Current(context.Background())
	if err != nil || cur != nil {
		t.Fatalf("expected guest for corrupt session, got %v (%v)", cur, err)
	}
}

func TestMockWatchDeliversInitialAndChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMock(store.NewMemory(), nil)
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	first := next(t, ch)
	if !first.Initial || first.Current != nil {
		t.Fatalf("expected initial guest resolution, got %+v", first)
	}

	if _, err := m.Login(ctx, "user@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	second := next(t, ch)
	if second.Initial || second.Previous != nil || second.Current == nil || second.Current.Email != "user@example.com" {
		t.Fatalf("unexpected change %+v", second)
	}

	if err := m.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	third := next(t, ch)
	if third.Current != nil || third.Previous == nil {
		t.Fatalf("unexpected change %+v", third)
	}
}

func TestMockWatchSeesOtherProcessWrites(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	base := t.TempDir()
	watching := NewMock(store.NewDisk(base), nil)
	ch, err := watching.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if first := next(t, ch); !first.Initial {
		t.Fatalf("expected initial change, got %+v", first)
	}

	time.Sleep(50 * time.Millisecond)

	other := NewMock(store.NewDisk(base), nil)
	if _, err := other.Login(ctx, "other@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	change := next(t, ch)
	if change.Current == nil || change.Current.Email != "other@example.com" {
		t.Fatalf("expected change to other@example.com, got %+v", change)
	}
}

type slowProvider struct {
	*Mock
	delay time.Duration
}

func (s slowProvider) Current(ctx context.Context) (*Identity, error) {
	time.Sleep(s.delay)
	return s.Mock.Current(ctx)
}

func TestResolveTimesOut(t *testing.T) {
	p := slowProvider{Mock: NewMock(store.NewMemory(), nil), delay: time.Second}
	if _, err := Resolve(context.Background(), p, 10*time.Millisecond); !errors.Is(err, ErrResolveTimeout) {
		t.Fatalf("expected ErrResolveTimeout, got %v", err)
	}

	fast := slowProvider{Mock: NewMock(store.NewMemory(), nil), delay: 0}
	id, err := Resolve(context.Background(), fast, time.Second)
	if err != nil || id != nil {
		t.Fatalf("expected guest, got %v (%v)", id, err)
	}
}

func next(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed")
		}
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for identity change")
	}
	return Change{}
}
