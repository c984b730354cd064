package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialValidator_ValidateEmail(t *testing.T) {
	validator := NewCredentialValidator()

	tests := []struct {
		name        string
		email       string
		wantErr     bool
		expectedErr string
	}{
		{name: "valid email", email: "a@x.com"},
		{name: "valid with plus", email: "a+blog@x.com"},
		{name: "empty", email: "", wantErr: true, expectedErr: "email is required"},
		{name: "no at sign", email: "alice", wantErr: true, expectedErr: "not a valid address"},
		{name: "display name form", email: "Alice <a@x.com>", wantErr: true, expectedErr: "not a valid address"},
		{name: "too long", email: strings.Repeat("a", 250) + "@x.com", wantErr: true, expectedErr: "at most 254"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCredentialValidator_ValidateRegister(t *testing.T) {
	validator := NewCredentialValidator()

	tests := []struct {
		name           string
		email          string
		password       string
		wantErr        bool
		expectedErrMsg string
	}{
		{name: "valid registration", email: "a@x.com", password: "pw1"},
		{name: "invalid email", email: "ab", password: "pw1", wantErr: true, expectedErrMsg: "email validation failed"},
		{name: "empty password", email: "a@x.com", password: "", wantErr: true, expectedErrMsg: "password validation failed"},
		{name: "password too long", email: "a@x.com", password: strings.Repeat("p", 73), wantErr: true, expectedErrMsg: "at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRegister(tt.email, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErrMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
