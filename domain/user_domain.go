package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessUpdateTelegram = "telegram chat ID updated successfully"
	MessageSuccessTestTelegram   = "test message sent, check your telegram"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedUpdateTelegram = "failed to update telegram chat ID"
	MessageFailedTestTelegram   = "failed to send test message"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTelegramNotLinked  = errors.New("no telegram chat ID saved")
	ErrTelegramSendFailed = errors.New("telegram message could not be delivered")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  *UserProfile `json:"user"`
	}

	UserProfile struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		Phone          string `json:"phone,omitempty"`
		TelegramChatID string `json:"telegram_chat_id,omitempty"`
		IsAdmin        bool   `json:"is_admin"`
		FinderPoints   int    `json:"finder_points"`
	}

	UpdateUserRequest struct {
		Name  string `json:"name" validate:"omitempty"`
		Phone string `json:"phone" validate:"omitempty"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	UpdateTelegramRequest struct {
		ChatID string `json:"chat_id" validate:"required"`
	}
)
