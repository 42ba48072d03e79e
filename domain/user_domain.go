package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogin      = "admin login successful"
	MessageSuccessGetUsers   = "users retrieved successfully"
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"

	MessageFailedLogin      = "invalid credentials"
	MessageFailedGetUsers   = "failed to retrieve users"
	MessageFailedCreateUser = "failed to create user"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound     = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already in use")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrAccountInactive  = errors.New("account is inactive")
	ErrUnauthorizedRole = errors.New("unauthorized role")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrDeleteOwnAccount = errors.New("cannot delete your own account")
)

type (
	AdminLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AdminLoginResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	CreateUserRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Role            string `json:"role" validate:"required,oneof=Admin Moderator Viewer"`
		IsActive        bool   `json:"is_active"`
		Password        string `json:"password" validate:"required,min=6"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	}

	UpdateUserRequest struct {
		Name     *string `json:"name" validate:"omitempty,min=1"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *string `json:"role" validate:"omitempty,oneof=Admin Moderator Viewer"`
		IsActive *bool   `json:"is_active"`
		Password *string `json:"password" validate:"omitempty,min=6"`
	}

	User struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
	}
)
