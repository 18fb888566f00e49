package user

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for a non-positive count or an unusable config.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	DefaultCount          = 10
	DefaultOutput         = "users.json"
	DefaultMinAge         = 18
	DefaultMaxAge         = 99
	DefaultPasswordLength = 12
	DefaultEmailDomain    = "example.com"

	// MaxAgeLimit caps MaxAge.
	MaxAgeLimit = 150

	// minPasswordLength fits one character from each class.
	minPasswordLength = 4
)

// Config is the generation settings table.
type Config struct {
	Count          int
	Output         string
	MinAge         int
	MaxAge         int
	PasswordLength int
	Genders        []Gender
	EmailDomain    string
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Count:          DefaultCount,
		Output:         DefaultOutput,
		MinAge:         DefaultMinAge,
		MaxAge:         DefaultMaxAge,
		PasswordLength: DefaultPasswordLength,
		Genders:        []Gender{GenderMale, GenderFemale, GenderOther},
		EmailDomain:    DefaultEmailDomain,
	}
}

// Validate reports the first unusable setting. Count and Output are checked
// by the caller that consumes them.
func (c Config) Validate() error {
	switch {
	case c.MinAge < 0:
		return fmt.Errorf("%w: min age %d is negative", ErrInvalidArgument, c.MinAge)
	case c.MinAge > c.MaxAge:
		return fmt.Errorf("%w: min age %d exceeds max age %d", ErrInvalidArgument, c.MinAge, c.MaxAge)
	case c.MaxAge > MaxAgeLimit:
		return fmt.Errorf("%w: max age %d exceeds %d", ErrInvalidArgument, c.MaxAge, MaxAgeLimit)
	case c.PasswordLength < minPasswordLength:
		return fmt.Errorf("%w: password length must be at least %d", ErrInvalidArgument, minPasswordLength)
	case len(c.Genders) == 0:
		return fmt.Errorf("%w: no genders configured", ErrInvalidArgument)
	case c.EmailDomain == "":
		return fmt.Errorf("%w: email domain is empty", ErrInvalidArgument)
	}
	return nil
}
