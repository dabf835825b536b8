package user

import (
	"errors"
	"os/user"
	"testing"
)

func TestDisplayName(t *testing.T) {
	noUser := func() (*user.User, error) { return nil, errors.New("no passwd entry") }
	account := func(name, username string) func() (*user.User, error) {
		return func() (*user.User, error) {
			return &user.User{Name: name, Username: username}, nil
		}
	}
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	tests := []struct {
		name    string
		current func() (*user.User, error)
		env     map[string]string
		want    string
	}{
		{"override wins", account("Ada Lovelace", "ada"), map[string]string{NameEnv: "Captain"}, "Captain"},
		{"first word of full name", account("Ada Lovelace", "ada"), nil, "Ada"},
		{"username without full name", account("", "ada"), nil, "ada"},
		{"USER env fallback", noUser, map[string]string{"USER": "root"}, "root"},
		{"blank override ignored", noUser, map[string]string{NameEnv: "  "}, fallbackName},
		{"nothing known", noUser, nil, fallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayName(tt.current, env(tt.env))
			if got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayName_NeverEmpty(t *testing.T) {
	if DisplayName() == "" {
		t.Error("DisplayName() returned empty string")
	}
}
