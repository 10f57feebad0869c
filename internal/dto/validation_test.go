package dto_test

import (
	"testing"

	"github.com/azrs7/Login/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"under_score-dash@host.io", true},
		{"", false},
		{"no-at-sign.com", false},
		{"a@nodot", false},
		{"a@x.c", false},
		{"a@x.c0m", false},
		{"sp ace@x.com", false},
		{"a@@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.IsValidEmail(tt.email))
		})
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	v := dto.NewValidator()

	valid := dto.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "pw1", ConfirmPassword: "pw1"}
	assert.NoError(t, v.Struct(valid))

	mismatch := valid
	mismatch.ConfirmPassword = "pw2"
	assert.Error(t, v.Struct(mismatch))

	badEmail := valid
	badEmail.Email = "alice"
	assert.Error(t, v.Struct(badEmail))
}

func TestLoginRequestValidation(t *testing.T) {
	v := dto.NewValidator()

	assert.NoError(t, v.Struct(dto.LoginRequest{Email: "a@x.com", Password: "pw"}))
	assert.Error(t, v.Struct(dto.LoginRequest{Email: "a@x", Password: "pw"}))
}
