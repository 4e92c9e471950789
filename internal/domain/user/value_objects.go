package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is a syntactically valid address with its domain lowercased.
// The local part keeps its case.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	at := strings.LastIndexByte(s, '@')
	return Email{value: s[:at+1] + strings.ToLower(s[at+1:])}, nil
}

func (e Email) Value() string { return e.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	switch {
	case len(s) < minPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(s) > maxPasswordBytes:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }
