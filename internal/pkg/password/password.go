package password

import (
	"aparthotel-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrMismatch = errs.New("password does not match")
)

// Hash returns a bcrypt hash at bcrypt.DefaultCost.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(b), nil
}

// Verify reports ErrMismatch for a wrong password; any other error means the stored hash is unusable.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrEmpty
	}
	switch err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "verify password")
	}
}
