package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateUsername returns an error if the given username is invalid.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if !unicode.IsLetter(rune(username[0])) {
		return fmt.Errorf("username must start with a letter")
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return fmt.Errorf("username can only contain letters, numbers, and hyphens")
		}
	}

	return nil
}

// ValidateEmail returns an error if the given email address is invalid.
// This is a plausibility check, not RFC validation.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}

	if strings.ContainsAny(email, " \t\n") {
		return fmt.Errorf("invalid email address")
	}

	return nil
}

// ValidateTeamName returns an error if the given team name is invalid.
func ValidateTeamName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("team name cannot be empty")
	}

	return nil
}
