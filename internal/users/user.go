package users

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"codeberg.org/mutker/erroror"
)

const (
	minNameLength = 2
	maxAge        = 150
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewUser validates the raw inputs and returns either a fully formed
// User with a fresh ID, or every validation failure at once, in field
// order.
func NewUser(name, email string, age int) erroror.ErrorOr[User] {
	var errs []erroror.Error

	name = strings.TrimSpace(name)
	if len(name) < minNameLength {
		errs = append(errs, ErrNameTooShort)
	}
	if !emailPattern.MatchString(email) {
		errs = append(errs, ErrEmailInvalid)
	}
	if age < 0 || age > maxAge {
		errs = append(errs, ErrAgeOutOfRange)
	}

	if len(errs) > 0 {
		return erroror.FromErrors[User](errs...)
	}

	return erroror.FromValue(User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Age:   age,
	})
}
