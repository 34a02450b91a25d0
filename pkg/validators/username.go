package validators

import "errors"

var (
	ErrUsernameTooShort = errors.New("username must be at least 5 characters long")
	ErrUsernameTooLong  = errors.New("username can't be longer than 20 characters")
	ErrUsernameInvalid  = errors.New("username can only contain letters and numbers")
)

// UsernameValidator checks an optional username. Empty is fine since
// accounts are keyed by email
func UsernameValidator(u string) error {
	if u == "" {
		return nil
	}

	if len(u) < 5 {
		return ErrUsernameTooShort
	}

	if len(u) > 20 {
		return ErrUsernameTooLong
	}

	for _, r := range u {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ErrUsernameInvalid
		}
	}

	return nil
}
