package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

// Helper to get the acting employee and role from the JWT context.
func getClaimsFromContext(ctx context.Context) (employeeID, role string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	role, _ = claims["role"].(string)

	return employeeID, role, nil
}

// nextEmployeeID picks the lowest free EMP number. IDs of deleted
// employees get reused, matching how allocation always behaved.
func nextEmployeeID(existing []string) string {
	used := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		used[id] = struct{}{}
	}

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("EMP%03d", n)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) {
		return employee.CreateEmployeeResponse{}, employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.CreateEmployeeResponse{}, employee.ErrEmailExists
	}

	ids, err := s.userRepo.ListEmployeeIDs(ctx)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to list employee ids: %w", err)
	}
	employeeID := nextEmployeeID(ids)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()

	_, err = s.userRepo.Create(ctx, user.User{
		EmployeeID:   employeeID,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		IsActive:     true,
		CreatedAt:    now,
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	_, err = s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID:     employeeID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Department:     req.Department,
		Position:       req.Position,
		Status:         employee.StatusActive,
		ProfilePicture: "/placeholder.svg",
		DateOfJoining:  now,
		Salary:         req.Salary,
		CreatedAt:      now,
	})
	if err != nil {
		// The login account exists without a profile at this point; take
		// it back out so the email and ID stay free.
		if delErr := s.userRepo.DeleteByEmployeeID(ctx, employeeID); delErr != nil {
			slog.Error("failed to clean up user after employee create failed",
				"employeeId", employeeID, "error", delErr)
		}
		return employee.CreateEmployeeResponse{}, err
	}

	return employee.CreateEmployeeResponse{EmployeeID: employeeID}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsHRRole(user.Role(role)) {
		return nil, employee.ErrUnauthorized
	}

	hr := employee.DepartmentHR
	employees, err := s.employeeRepo.List(ctx, employee.ListFilter{ExcludeDepartment: &hr})
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	isHR := user.IsHRRole(user.Role(role))
	isSelf := actorID == req.EmployeeID
	if !isHR && !isSelf {
		return employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return err
	}
	if !req.HasUpdates() {
		return employee.ErrNoFieldsToUpdate
	}
	if !isHR && req.RequiresHR() {
		return employee.ErrOnlyHRCanSetField
	}

	if req.Email != nil {
		taken, err := s.employeeRepo.ExistsByEmail(ctx, *req.Email, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return employee.ErrEmailExists
		}

		// Keep the login account's email in step with the profile.
		if err := s.userRepo.UpdateEmail(ctx, req.EmployeeID, *req.Email); err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
	}

	if req.Status != nil {
		// Deactivating an employee also locks them out.
		isActive := *req.Status == string(employee.StatusActive)
		if err := s.userRepo.UpdateActive(ctx, req.EmployeeID, isActive); err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
	}

	return s.employeeRepo.Update(ctx, req)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, employeeID string) error {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.IsHRRole(user.Role(role)) {
		return employee.ErrUnauthorized
	}
	if actorID == employeeID {
		return employee.ErrCannotDeleteSelf
	}

	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		return err
	}

	if err := s.userRepo.DeleteByEmployeeID(ctx, employeeID); err != nil {
		slog.Error("failed to delete user for removed employee",
			"employeeId", employeeID, "error", err)
	}

	return nil
}

// ChangePassword implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ChangePassword(ctx context.Context, req employee.ChangePasswordRequest) error {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	isHR := user.IsHRRole(user.Role(role))
	isSelf := actorID == req.EmployeeID
	if !isHR && !isSelf {
		return employee.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return err
	}

	account, err := s.userRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	if isSelf && !isHR {
		if req.CurrentPassword == nil || *req.CurrentPassword == "" {
			return user.ErrPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(*req.CurrentPassword)); err != nil {
			return user.ErrPasswordIncorrect
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, req.EmployeeID, string(hash), nil)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID.Hex(),
		EmployeeID:     emp.EmployeeID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		Department:     emp.Department,
		Position:       emp.Position,
		Status:         string(emp.Status),
		ProfilePicture: emp.ProfilePicture,
		DateOfJoining:  emp.DateOfJoining.Format("2006-01-02"),
		Salary:         emp.Salary,
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
	}
}
