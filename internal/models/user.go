package models

import (
	"regexp"
	"time"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents an account in the system
type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	Phone        string    `json:"phone" db:"phone"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserCreateRequest represents the data needed to create a new user
type UserCreateRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Phone    string   `json:"phone"`
	Role     UserRole `json:"role"`
}

// UserUpdateRequest represents a partial profile update.
// Nil fields are left unchanged.
type UserUpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates user creation data, collecting every field error.
func (req *UserCreateRequest) Validate() error {
	var errs ValidationErrors

	if req.Name == "" {
		errs = errs.Add("name is required")
	} else if len(req.Name) > 100 {
		errs = errs.Add("name must be less than 100 characters")
	}

	errs = append(errs, validateUserEmail(req.Email)...)
	errs = append(errs, validateUserPassword(req.Password)...)

	switch req.Role {
	case "", RoleUser, RoleAdmin:
	default:
		errs = errs.Add("invalid user role")
	}

	return errs.OrNil()
}

// Validate validates a profile update; only set fields are checked.
func (req *UserUpdateRequest) Validate() error {
	var errs ValidationErrors

	if req.Name != nil {
		if *req.Name == "" {
			errs = errs.Add("name is required")
		} else if len(*req.Name) > 100 {
			errs = errs.Add("name must be less than 100 characters")
		}
	}
	if req.Phone != nil && len(*req.Phone) > 20 {
		errs = errs.Add("phone must be less than 20 characters")
	}

	return errs.OrNil()
}

func validateUserEmail(email string) ValidationErrors {
	var errs ValidationErrors
	if email == "" {
		return errs.Add("email is required")
	}
	if len(email) > 255 {
		errs = errs.Add("email must be less than 255 characters")
	}
	if !emailRegex.MatchString(email) {
		errs = errs.Add("email format is invalid")
	}
	return errs
}

func validateUserPassword(password string) ValidationErrors {
	var errs ValidationErrors
	if password == "" {
		return errs.Add("password is required")
	}
	if len(password) < 8 {
		errs = errs.Add("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		errs = errs.Add("password must be less than 128 characters")
	}
	return errs
}
