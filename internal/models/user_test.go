package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}

func TestUserCreateRequestValidate(t *testing.T) {
	valid := UserCreateRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "supersecret",
	}

	tests := []struct {
		name    string
		mutate  func(*UserCreateRequest)
		wantErr string
	}{
		{"valid", func(r *UserCreateRequest) {}, ""},
		{"valid with role", func(r *UserCreateRequest) { r.Role = RoleAdmin }, ""},
		{"missing name", func(r *UserCreateRequest) { r.Name = "" }, "name is required"},
		{"name too long", func(r *UserCreateRequest) { r.Name = strings.Repeat("a", 101) }, "name must be less than 100 characters"},
		{"missing email", func(r *UserCreateRequest) { r.Email = "" }, "email is required"},
		{"bad email", func(r *UserCreateRequest) { r.Email = "not-an-email" }, "email format is invalid"},
		{"missing password", func(r *UserCreateRequest) { r.Password = "" }, "password is required"},
		{"short password", func(r *UserCreateRequest) { r.Password = "short" }, "password must be at least 8 characters long"},
		{"unknown role", func(r *UserCreateRequest) { r.Role = "superuser" }, "invalid user role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUserCreateRequestValidateCollectsAllErrors(t *testing.T) {
	req := UserCreateRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestUserUpdateRequestValidate(t *testing.T) {
	assert.NoError(t, (&UserUpdateRequest{}).Validate())

	name := "New Name"
	phone := "0712345678"
	assert.NoError(t, (&UserUpdateRequest{Name: &name, Phone: &phone}).Validate())

	empty := ""
	err := (&UserUpdateRequest{Name: &empty}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	longPhone := strings.Repeat("9", 21)
	err = (&UserUpdateRequest{Phone: &longPhone}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone must be less than 20 characters")
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	user := &User{Name: "Jane", PasswordHash: "secret-hash"}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
}
