// Package validation checks the registration and settings input the CLI
// collects before it reaches the core. Every failure wraps
// common.ErrValidation with a human-readable reason.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/codetutor/internal/common"
	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Validator bundles the field-level rules for user-supplied strings.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

// Username accepts 4–20 alphanumeric characters that are not all digits.
func (val *Validator) Username(s string) error {
	if err := val.v.Var(s, "required,alphanum,min=4,max=20"); err != nil {
		return fmt.Errorf("%w: username must be 4-20 letters and digits", common.ErrValidation)
	}
	if strings.IndexFunc(s, unicode.IsLetter) < 0 {
		return fmt.Errorf("%w: username cannot be all digits", common.ErrValidation)
	}
	return nil
}

// Name accepts 2–50 characters consisting of letters and spaces.
func (val *Validator) Name(s string) error {
	if err := val.v.Var(s, "required,min=2,max=50"); err != nil {
		return fmt.Errorf("%w: name must be 2-50 characters", common.ErrValidation)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("%w: name may contain only letters and spaces", common.ErrValidation)
		}
	}
	return nil
}

// Email accepts a 5–100 character e-mail address.
func (val *Validator) Email(s string) error {
	if err := val.v.Var(s, "required,email,min=5,max=100"); err != nil {
		return fmt.Errorf("%w: please enter a valid email address", common.ErrValidation)
	}
	return nil
}

// Password requires MinPasswordLength characters with at least one letter,
// one digit, and one special character.
func (val *Validator) Password(s string) error {
	if len(s) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasLetter || !hasDigit || !hasSpecial {
		return fmt.Errorf("%w: password needs letters, digits and special characters", common.ErrValidation)
	}
	return nil
}
