package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStayRange    = errors.New("check-in must be before check-out")
	ErrInvalidGuestCount   = errors.New("guests must be at least 1")
	ErrGuestNameRequired   = errors.New("guest name is required")
	ErrGuestEmailRequired  = errors.New("guest email is required")
	ErrInvalidGuestEmail   = errors.New("invalid guest email")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrUnknownContact      = errors.New("unknown contact method")
	ErrUnknownStatus       = errors.New("unknown reservation status")
	ErrRequestsTooLong     = errors.New("special requests exceed maximum length")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrCapacityExceeded    = errors.New("guests exceed apartment capacity")
	ErrMissingUnit         = errors.New("apartment id is required")
	ErrMissingRequester    = errors.New("requester id is required")
	ErrGuestNameTooLong    = errors.New("guest name is too long")
	ErrGuestPhoneMalformed = errors.New("guest phone must contain digits")
	ErrControlCharacters   = errors.New("contains control characters")
)

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

type ContactMethod string

const (
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactTelegram ContactMethod = "telegram"
	ContactEmail    ContactMethod = "email"
	ContactPhone    ContactMethod = "phone"
)

func ParseContactMethod(s string) (ContactMethod, error) {
	cm := ContactMethod(s)
	if !cm.IsValid() {
		return "", fieldErr("contactMethod", ErrUnknownContact)
	}
	return cm, nil
}

func (c ContactMethod) String() string {
	return string(c)
}

func (c ContactMethod) IsValid() bool {
	switch c {
	case ContactWhatsApp, ContactTelegram, ContactEmail, ContactPhone:
		return true
	default:
		return false
	}
}
