package auth

import (
	"context"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
)

type AuthService interface {
	// Login verifies credentials against the stored hash and issues an
	// access token; disabled accounts are rejected.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// GetProfile returns the authenticated user's employee record.
	GetProfile(ctx context.Context) (employee.EmployeeResponse, error)

	// ResetPassword sets a new password for any account (HR).
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}
