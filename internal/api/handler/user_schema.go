package handler

import (
	"strings"
	"time"
)

// errorResponse mirrors the envelope rendered by the central error handler.
// Fields only appears on validation failures.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"omitempty,oneof=user manager viewer admin"`
	Password string `json:"password" validate:"required,min=6"`
}

// updateUserRequest carries a partial update. Every field is optional and an
// empty string reads as "no change", so the same falsy-skip rule the service
// applies is already visible in the wire contract.
type updateUserRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Role     string `json:"role"     validate:"omitempty,oneof=user manager viewer admin"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// normalize trims the name before validation so the min-length rule applies
// to the trimmed value ("  a  " is one character, not five).
func (r *createUserRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *updateUserRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// --- Response types ---

// userResponse is the sanitized view of a record: it has no password field at
// all, so a serialization bug cannot leak one.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type deleteUserResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

type rootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
