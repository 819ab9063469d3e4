// Package signup validates registration input. Every check returns a Result
// carrying a ValidationError, and a failing check stops the ones after it.
package signup

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

const MinUsernameLength = 3

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type User struct {
	Username string
	Email    string
}

type Account struct {
	ID uuid.UUID
	User
}

// ValidateUsername counts user-perceived characters, so "héé" and a
// three-emoji name are both long enough.
func ValidateUsername(username string) rop.Result[string, ValidationError] {
	name := strings.TrimSpace(username)
	if uniseg.GraphemeClusterCount(name) < MinUsernameLength {
		return rop.Failure[string](ValidationError{
			Field:   "username",
			Message: fmt.Sprintf("Username must be at least %d characters", MinUsernameLength),
		})
	}
	return rop.Success[string, ValidationError](name)
}

func ValidateEmail(email string) rop.Result[string, ValidationError] {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return rop.Failure[string](ValidationError{
			Field:   "email",
			Message: "Email address is not valid",
		})
	}
	return rop.Success[string, ValidationError](addr.Address)
}

// ValidateUser checks the username first; the email is only looked at once
// the username passed.
func ValidateUser(username, email string) rop.Result[User, ValidationError] {
	return solo.AndThen(ValidateUsername(username), func(name string) rop.Result[User, ValidationError] {
		return solo.Map(ValidateEmail(email), func(addr string) User {
			return User{Username: name, Email: addr}
		})
	})
}

// Register validates the input and assigns the account a fresh ID.
func Register(username, email string) rop.Result[Account, ValidationError] {
	return solo.Map(ValidateUser(username, email), func(u User) Account {
		return Account{ID: uuid.New(), User: u}
	})
}
