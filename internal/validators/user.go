package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/yobo-blog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the e-mail address of a register or login request.
	FieldEmail = "email"

	// FieldPassword targets the password. For registration it is checked
	// against the password policy; for login it only has to be present.
	FieldPassword = "password"

	// FieldFullName targets the optional display name.
	FieldFullName = "full_name"
)

const (
	maxEmailLength    = 254
	maxFullNameLength = 100
)

// UserValidator validates registration and login requests.
type UserValidator struct {
	passwords *PasswordValidator
}

// NewUserValidator constructs a [Validator] for [models.RegisterRequest] and
// [models.LoginRequest] that enforces policy on new passwords.
func NewUserValidator(policy PasswordPolicy) Validator {
	return &UserValidator{passwords: NewPasswordValidator(policy)}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. When fields is empty every field is validated.
//
// Returns [Violations] listing every broken rule, [ErrUnsupportedType] or
// [ErrUnknownField].
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if msg := checkEmail(req.Email); msg != "" {
				errs.add(msg)
			}
		case FieldPassword:
			errs.addAll(v.passwords.Check(req.Password))
		case FieldFullName:
			if utf8.RuneCountInString(strings.TrimSpace(req.FullName)) > maxFullNameLength {
				errs.add(fmt.Sprintf("full name must be at most %d characters long", maxFullNameLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				errs.add("email is required")
			}
		case FieldPassword:
			if req.Password == "" {
				errs.add("password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// checkEmail accepts a bare RFC 5322 address such as "user@example.com".
// Display-name forms like "User <user@example.com>" are rejected.
func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "email is required"
	}
	if len(email) > maxEmailLength {
		return fmt.Sprintf("email must be at most %d characters long", maxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "email is not a valid address"
	}

	return ""
}
