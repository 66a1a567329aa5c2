package validators

import (
	"testing"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/stretchr/testify/assert"
)

func defaultPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:              6,
		MaxLength:              72,
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
		RequiredUniqueChars:    1,
	}
}

func TestPasswordValidator_Check(t *testing.T) {
	v := NewPasswordValidator(defaultPolicy())

	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{name: "valid", password: "Secret1!", want: nil},
		{name: "valid unicode", password: "Şifre1!x", want: nil},
		{
			name:     "too short",
			password: "Ab1!",
			want:     []string{"password must be at least 6 characters long"},
		},
		{
			name:     "too long",
			password: "Aa1!" + string(make([]byte, 70)),
			want:     []string{"password must be at most 72 bytes long"},
		},
		{
			name:     "only lowercase",
			password: "abcdefgh",
			want: []string{
				"password must contain a digit ('0'-'9')",
				"password must contain an uppercase letter ('A'-'Z')",
				"password must contain a non-alphanumeric character",
			},
		},
		{
			name:     "empty reports everything",
			password: "",
			want: []string{
				"password must be at least 6 characters long",
				"password must contain a digit ('0'-'9')",
				"password must contain a lowercase letter ('a'-'z')",
				"password must contain an uppercase letter ('A'-'Z')",
				"password must contain a non-alphanumeric character",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Check(tt.password))
		})
	}
}

func TestPasswordValidator_UniqueChars(t *testing.T) {
	p := PasswordPolicy{MinLength: 1, RequiredUniqueChars: 4}
	v := NewPasswordValidator(p)

	assert.Equal(t, []string{"password must use at least 4 different characters"}, v.Check("aaabbb"))
	assert.Nil(t, v.Check("abcd"))
}

func TestPasswordPolicyFromConfig(t *testing.T) {
	off := false
	on := true

	got := PasswordPolicyFromConfig(config.PasswordPolicy{
		MinLength:           8,
		MaxLength:           64,
		RequireDigit:        &off,
		RequireUppercase:    &on,
		RequiredUniqueChars: 2,
	})

	assert.Equal(t, PasswordPolicy{
		MinLength:              8,
		MaxLength:              64,
		RequireDigit:           false,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
		RequiredUniqueChars:    2,
	}, got)
}
