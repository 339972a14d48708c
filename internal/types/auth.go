package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared across request types; validator.Validate caches
// struct metadata, so a single instance is cheaper than one per call.
var validate = validator.New()

// CreateUserRequest is the payload for registering a new account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// LoginRequest is the payload for an email/password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePasswordRequest changes the caller's password after verifying the
// current one.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (r *UpdatePasswordRequest) Validate() error {
	return validate.Struct(r)
}

// User is the account shape returned by the API. It mirrors the database
// row without the password hash.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse pairs the account with a freshly issued token. Returned by
// both register and login.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
