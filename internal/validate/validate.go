// Package validate implements the field-level form validation rules shared
// by the login, register and review workflows.
//
// Rules run client-side before any request is sent; failures are
// field-scoped so callers can report each offending input separately.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Memetgms/kitapinceleme/internal/shared"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	userNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Review comment length bounds.
const (
	MinCommentLen = 10
	MaxCommentLen = 500
)

// FieldError reports a validation failure scoped to a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e FieldError) Unwrap() error {
	return shared.ErrValidation
}

// FieldErrors aggregates per-field failures from a composite validation.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, len(e))
	for i, fe := range e {
		messages[i] = fe.Error()
	}
	return strings.Join(messages, "; ")
}

func (e FieldErrors) Unwrap() error {
	return shared.ErrValidation
}

// OrNil returns the aggregate as an error, or nil when no field failed.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Email checks that value is a plausible e-mail address.
func Email(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return FieldError{Field: "email", Message: "email address is required"}
	}
	if !emailRegex.MatchString(value) {
		return FieldError{Field: "email", Message: "enter a valid email address"}
	}
	return nil
}

// Password checks the password length bounds.
func Password(value string) error {
	if value == "" {
		return FieldError{Field: "password", Message: "password is required"}
	}
	if len(value) < 6 {
		return FieldError{Field: "password", Message: "password must be at least 6 characters"}
	}
	if len(value) > 50 {
		return FieldError{Field: "password", Message: "password must be at most 50 characters"}
	}
	return nil
}

// PasswordMatch checks the confirmation field against the password.
func PasswordMatch(password, confirm string) error {
	if confirm == "" {
		return FieldError{Field: "confirmPassword", Message: "password confirmation is required"}
	}
	if password != confirm {
		return FieldError{Field: "confirmPassword", Message: "passwords do not match"}
	}
	return nil
}

// UserName checks the username length and character rules.
func UserName(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return FieldError{Field: "userName", Message: "username is required"}
	}
	if len(value) < 3 {
		return FieldError{Field: "userName", Message: "username must be at least 3 characters"}
	}
	if len(value) > 20 {
		return FieldError{Field: "userName", Message: "username must be at most 20 characters"}
	}
	if !userNameRegex.MatchString(value) {
		return FieldError{Field: "userName", Message: "username may only contain letters, digits, dashes and underscores"}
	}
	return nil
}

// FullName checks the full-name length bounds.
func FullName(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return FieldError{Field: "fullName", Message: "full name is required"}
	}
	if len([]rune(value)) < 2 {
		return FieldError{Field: "fullName", Message: "full name must be at least 2 characters"}
	}
	if len([]rune(value)) > 50 {
		return FieldError{Field: "fullName", Message: "full name must be at most 50 characters"}
	}
	return nil
}

// Rating checks a review rating is in [1,5].
func Rating(value int) error {
	if value < 1 || value > 5 {
		return FieldError{Field: "rating", Message: "rating must be between 1 and 5"}
	}
	return nil
}

// Comment checks a review comment is present and within length bounds.
// Length is measured on the trimmed comment, in runes.
func Comment(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return FieldError{Field: "comment", Message: "comment is required"}
	}
	length := len([]rune(value))
	if length < MinCommentLen {
		return FieldError{Field: "comment", Message: fmt.Sprintf("comment must be at least %d characters", MinCommentLen)}
	}
	if length > MaxCommentLen {
		return FieldError{Field: "comment", Message: fmt.Sprintf("comment must be at most %d characters", MaxCommentLen)}
	}
	return nil
}

// Login validates the login form, collecting every field failure.
func Login(email, password string) error {
	var errs FieldErrors
	if err := Email(email); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := Password(password); err != nil {
		errs = append(errs, err.(FieldError))
	}
	return errs.OrNil()
}

// Registration validates the register form, collecting every field failure.
func Registration(fullName, userName, email, password, confirm string) error {
	var errs FieldErrors
	if err := FullName(fullName); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := UserName(userName); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := Email(email); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := Password(password); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := PasswordMatch(password, confirm); err != nil {
		errs = append(errs, err.(FieldError))
	}
	return errs.OrNil()
}

// Review validates a review submission, collecting every field failure.
func Review(rating int, comment string) error {
	var errs FieldErrors
	if err := Rating(rating); err != nil {
		errs = append(errs, err.(FieldError))
	}
	if err := Comment(comment); err != nil {
		errs = append(errs, err.(FieldError))
	}
	return errs.OrNil()
}
