package validators

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/yobo-blog/internal/config"
)

// PasswordPolicy is the resolved rule set enforced for new passwords.
type PasswordPolicy struct {
	MinLength              int
	MaxLength              int
	RequireDigit           bool
	RequireLowercase       bool
	RequireUppercase       bool
	RequireNonAlphanumeric bool
	RequiredUniqueChars    int
}

// PasswordPolicyFromConfig resolves the optional switches of cfg.
// A switch left unset counts as enabled.
func PasswordPolicyFromConfig(cfg config.PasswordPolicy) PasswordPolicy {
	return PasswordPolicy{
		MinLength:              cfg.MinLength,
		MaxLength:              cfg.MaxLength,
		RequireDigit:           enabled(cfg.RequireDigit),
		RequireLowercase:       enabled(cfg.RequireLowercase),
		RequireUppercase:       enabled(cfg.RequireUppercase),
		RequireNonAlphanumeric: enabled(cfg.RequireNonAlphanumeric),
		RequiredUniqueChars:    cfg.RequiredUniqueChars,
	}
}

func enabled(b *bool) bool {
	return b == nil || *b
}

// PasswordValidator checks passwords against a [PasswordPolicy].
type PasswordValidator struct {
	policy PasswordPolicy
}

func NewPasswordValidator(policy PasswordPolicy) *PasswordValidator {
	return &PasswordValidator{policy: policy}
}

// Check returns one message per violated rule, or nil when password is
// acceptable. MinLength counts characters; MaxLength counts bytes.
func (v *PasswordValidator) Check(password string) []string {
	p := v.policy

	var (
		msgs                         []string
		hasDigit, hasLower, hasUpper bool
		hasOther                     bool
	)
	unique := make(map[rune]struct{}, len(password))

	for _, r := range password {
		unique[r] = struct{}{}
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r):
			hasOther = true
		}
	}

	if p.MinLength > 0 && utf8.RuneCountInString(password) < p.MinLength {
		msgs = append(msgs, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		msgs = append(msgs, fmt.Sprintf("password must be at most %d bytes long", p.MaxLength))
	}
	if p.RequireDigit && !hasDigit {
		msgs = append(msgs, "password must contain a digit ('0'-'9')")
	}
	if p.RequireLowercase && !hasLower {
		msgs = append(msgs, "password must contain a lowercase letter ('a'-'z')")
	}
	if p.RequireUppercase && !hasUpper {
		msgs = append(msgs, "password must contain an uppercase letter ('A'-'Z')")
	}
	if p.RequireNonAlphanumeric && !hasOther {
		msgs = append(msgs, "password must contain a non-alphanumeric character")
	}
	if p.RequiredUniqueChars > 1 && len(unique) < p.RequiredUniqueChars {
		msgs = append(msgs, fmt.Sprintf("password must use at least %d different characters", p.RequiredUniqueChars))
	}

	return msgs
}
