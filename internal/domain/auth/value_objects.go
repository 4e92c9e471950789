// Package auth holds login input that has already passed shape checks.
package auth

import "aparthotel-booking/internal/domain/user"

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(email, password string) (Credentials, error) {
	var (
		c   Credentials
		err error
	)
	if c.email, err = user.NewEmail(email); err != nil {
		return Credentials{}, err
	}
	if c.password, err = user.NewPassword(password); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }
