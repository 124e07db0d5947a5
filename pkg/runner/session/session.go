// Package session signs users in and out of academia.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/identity"
)

type Action string

const (
	Login  Action = "login"
	Signup Action = "signup"
	Logout Action = "logout"
	WhoAmI Action = "whoami"
)

// Session runs one identity action and reloads Store for the result.
type Session struct {
	Action   Action
	Email    string
	Password string

	Provider identity.Provider
	Store    *app.Store
	Out      io.Writer
}

func (n *Session) Do(ctx context.Context) error {
	if n.Provider == nil || n.Store == nil {
		return errors.New("session: no identity provider")
	}

	var (
		id  *identity.Identity
		err error
	)
	switch n.Action {
	case Login:
		id, err = n.Provider.Login(ctx, n.Email, n.Password)
	case Signup:
		id, err = n.Provider.Signup(ctx, n.Email, n.Password)
	case Logout:
		err = n.Provider.Logout(ctx)
	case WhoAmI:
		id = n.Store.Identity()
	default:
		return fmt.Errorf("session: unknown action %q", n.Action)
	}
	if err != nil {
		return err
	}
	if n.Action != WhoAmI {
		n.Store.SetIdentity(id)
	}
	n.print(id)
	return nil
}

func (n *Session) print(id *identity.Identity) {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	switch n.Action {
	case Logout:
		_, _ = fmt.Fprintln(out, "signed out, now browsing as guest")
	case WhoAmI:
		_, _ = bold.Fprintln(out, id.String())
	default:
		_, _ = fmt.Fprint(out, "signed in as ")
		_, _ = bold.Fprintln(out, id.String())
	}
	_, _ = faint.Fprintf(out, "data: %s", n.Store.Key())
	if n.Store.Degraded() {
		_, _ = faint.Fprint(out, " (unsaved, storage unavailable)")
	}
	_, _ = fmt.Fprintln(out)
}
