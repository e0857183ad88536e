package common

import (
	"errors"
	"regexp"
	"strings"
)

const MinUsernameLength = 3

var (
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters")
	ErrUsernameInvalidChar = errors.New("username can only contain letters, numbers, underscores, and hyphens")

	usernamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	nonUsernameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
)

// ValidateUsername checks length before characters, so "a!" reports the length.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameInvalidChar
	}
	return nil
}

// UsernameFromEmail derives a username from the local part of email. It
// returns "" when nothing valid survives.
func UsernameFromEmail(email string) string {
	local := EmailLocalPart(email)
	username := strings.Trim(nonUsernameChars.ReplaceAllString(local, ""), "-")
	if ValidateUsername(username) != nil {
		return ""
	}
	return username
}

func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

// NormalizeEmail lowercases and trims so lookups match the unique index.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
