package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("email must look like name@domain.com")
	ErrInvalidRole       = errors.New("invalid role")
	ErrPasswordTooWeak   = errors.New("password must be at least 8 characters long")
	ErrInvalidNationalID = errors.New("national id must contain exactly 10 digits")
	ErrMissingName       = errors.New("name and surname are required")
	ErrMissingUserID     = errors.New("user id is required")
)

// Registrations only accept .com addresses, matching what the backend user service stores.
var (
	emailRegex      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.com$`)
	nationalIDRegex = regexp.MustCompile(`^\d{10}$`)
)

const minPasswordLength = 8

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type NationalID struct {
	value string
}

func NewNationalID(s string) (NationalID, error) {
	s = strings.TrimSpace(s)
	if !nationalIDRegex.MatchString(s) {
		return NationalID{}, ErrInvalidNationalID
	}
	return NationalID{value: s}, nil
}

func (n NationalID) Value() string {
	return n.value
}
