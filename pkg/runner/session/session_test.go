package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/identity"
	"tableflip.dev/academia/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	p := identity.NewMock(m, nil)
	s := app.New(m, nil)
	s.SetIdentity(nil)

	var buf bytes.Buffer
	run := func(a Action, email, password string) error {
		buf.Reset()
		n := &Session{Action: a, Email: email, Password: password, Provider: p, Store: s, Out: &buf}
		return n.Do(ctx)
	}

	if err := run(Login, "ada@example.com", "pw"); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Key(), "app-data-mock-uid-ada@example.com"; got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
	if !strings.Contains(buf.String(), "signed in as ada@example.com") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	if err := run(WhoAmI, "", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "ada@example.com") {
		t.Fatalf("unexpected whoami %q", buf.String())
	}

	if err := run(Logout, "", ""); err != nil {
		t.Fatal(err)
	}
	if s.Key() != "app-data-guest" {
		t.Fatalf("logout should switch to guest, key = %q", s.Key())
	}
}

func TestSessionRejectsBadCredentials(t *testing.T) {
	m := store.NewMemory()
	s := app.New(m, nil)
	s.SetIdentity(nil)
	n := &Session{Action: Signup, Email: "not-an-email", Password: "pw", Provider: identity.NewMock(m, nil), Store: s, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if s.Key() != "app-data-guest" {
		t.Fatalf("failed signup must not switch namespace, key = %q", s.Key())
	}
}
