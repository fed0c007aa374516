package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/fixtures"
)

type LeaveServiceImpl struct {
	leaveTypeRepo    leave.LeaveTypeRepository
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
}

func NewLeaveService(
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveTypeRepo:    leaveTypeRepo,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
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

// CreateType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) {
		return leave.LeaveTypeResponse{}, leave.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	code := strings.ToUpper(req.Code)

	existing, err := s.leaveTypeRepo.GetByCode(ctx, code)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	if existing != nil {
		return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeCodeExists
	}

	sameName, err := s.leaveTypeRepo.GetByName(ctx, req.Name, "")
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	if sameName != nil {
		return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNameExists
	}

	maxCarryForward := req.MaxCarryForward
	if !req.CarryForward {
		maxCarryForward = 0
	}

	// Paid and active default to true when omitted.
	isPaid := req.IsPaid == nil || *req.IsPaid
	isActive := req.IsActive == nil || *req.IsActive

	created, err := s.leaveTypeRepo.Create(ctx, leave.LeaveType{
		Name:            req.Name,
		Code:            code,
		TotalDays:       req.TotalDays,
		Description:     req.Description,
		CarryForward:    req.CarryForward,
		MaxCarryForward: maxCarryForward,
		IsPaid:          isPaid,
		IsActive:        isActive,
		CreatedBy:       actorID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return toTypeResponse(created), nil
}

// UpdateType implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateType(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.IsHRRole(user.Role(role)) {
		return leave.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.leaveTypeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return leave.ErrLeaveTypeNotFound
	}

	if req.Name != nil {
		sameName, err := s.leaveTypeRepo.GetByName(ctx, *req.Name, req.ID)
		if err != nil {
			return err
		}
		if sameName != nil {
			return leave.ErrLeaveTypeNameExists
		}
	}

	return s.leaveTypeRepo.Update(ctx, req, actorID)
}

// GetType implements leave.LeaveService.
func (s *LeaveServiceImpl) GetType(ctx context.Context, id string) (leave.LeaveTypeResponse, error) {
	lt, err := s.leaveTypeRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}
	if lt == nil {
		return leave.LeaveTypeResponse{}, leave.ErrLeaveTypeNotFound
	}

	return toTypeResponse(*lt), nil
}

// ListTypes implements leave.LeaveService. Employees only see active
// types; HR sees everything.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	activeOnly := !user.IsHRRole(user.Role(role))
	types, err := s.leaveTypeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		responses = append(responses, toTypeResponse(lt))
	}

	return responses, nil
}

// DeleteType implements leave.LeaveService. Types referenced by any
// request can only be deactivated, never deleted.
func (s *LeaveServiceImpl) DeleteType(ctx context.Context, id string) error {
	_, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if !user.IsHRRole(user.Role(role)) {
		return leave.ErrUnauthorized
	}

	lt, err := s.leaveTypeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lt == nil {
		return leave.ErrLeaveTypeNotFound
	}

	inUse, err := s.leaveRequestRepo.ExistsByLeaveTypeName(ctx, lt.Name)
	if err != nil {
		return err
	}
	if inUse {
		return leave.ErrLeaveTypeInUse
	}

	return s.leaveTypeRepo.Delete(ctx, id)
}

// SeedTypes implements leave.LeaveService. Existing codes are left
// untouched so the endpoint stays idempotent.
func (s *LeaveServiceImpl) SeedTypes(ctx context.Context) (leave.SeedLeaveTypesResponse, error) {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.SeedLeaveTypesResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) {
		return leave.SeedLeaveTypesResponse{}, leave.ErrUnauthorized
	}

	var resp leave.SeedLeaveTypesResponse
	for _, lt := range fixtures.GetDefaultLeaveTypes() {
		existing, err := s.leaveTypeRepo.GetByCode(ctx, lt.Code)
		if err != nil {
			return leave.SeedLeaveTypesResponse{}, err
		}
		if existing != nil {
			resp.Skipped++
			continue
		}

		lt.CreatedBy = actorID
		lt.CreatedAt = time.Now().UTC()
		if _, err := s.leaveTypeRepo.Create(ctx, lt); err != nil {
			return leave.SeedLeaveTypesResponse{}, err
		}
		resp.Created++
	}

	return resp, nil
}

func toTypeResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	return leave.LeaveTypeResponse{
		ID:              lt.ID.Hex(),
		Name:            lt.Name,
		Code:            lt.Code,
		TotalDays:       lt.TotalDays,
		Description:     lt.Description,
		CarryForward:    lt.CarryForward,
		MaxCarryForward: lt.MaxCarryForward,
		IsPaid:          lt.IsPaid,
		IsActive:        lt.IsActive,
	}
}
