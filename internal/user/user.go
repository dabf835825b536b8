// Package user resolves how the person at the keyboard is named in the chat
// transcript.
package user

import (
	"os"
	"os/user"
	"strings"
)

// NameEnv overrides the detected name
const NameEnv = "DREAMSCAPE_NAME"

// fallbackName is used when nothing else is known
const fallbackName = "You"

// DisplayName returns the label for the user's own chat messages.
// It tries, in order: DREAMSCAPE_NAME, the first word of the account's full
// name, the account username, the USER environment variable.
func DisplayName() string {
	return displayName(user.Current, os.Getenv)
}

func displayName(current func() (*user.User, error), getenv func(string) string) string {
	if name := strings.TrimSpace(getenv(NameEnv)); name != "" {
		return name
	}

	if u, err := current(); err == nil && u != nil {
		if fields := strings.Fields(u.Name); len(fields) > 0 {
			return fields[0]
		}
		if u.Username != "" {
			return u.Username
		}
	}

	if name := strings.TrimSpace(getenv("USER")); name != "" {
		return name
	}
	return fallbackName
}
