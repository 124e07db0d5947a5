package options

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// SessionOptions
type SessionOptions struct {
	Email         string
	Password      string
	PasswordStdin bool
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
	cmd.Flags().BoolVar(&o.PasswordStdin, "password-stdin", false,
		"Read the password from stdin.")
}

// Credentials returns the email and password, reading the password from
// stdin when asked.
func (o *SessionOptions) Credentials() (string, string, error) {
	if strings.TrimSpace(o.Email) == "" {
		return "", "", errors.New("requires --email")
	}
	if !o.PasswordStdin {
		return o.Email, o.Password, nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", "", err
	}
	return o.Email, strings.TrimRight(line, "\r\n"), nil
}
