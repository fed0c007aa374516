package leave

import (
	"context"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

// ListRequests implements leave.LeaveService. Employees only see their
// own requests; HR sees everyone's.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var filter leave.RequestFilter
	if !user.IsHRRole(user.Role(role)) {
		filter.EmployeeID = &employeeID
	}

	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, s.withEmployeeDetails(ctx, lr))
	}

	return responses, nil
}

// withEmployeeDetails backfills denormalized fields for requests written
// without them.
func (s *LeaveServiceImpl) withEmployeeDetails(ctx context.Context, lr leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := toRequestResponse(lr)
	if resp.EmployeeName != "" {
		return resp
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, lr.EmployeeID)
	if err != nil {
		resp.EmployeeName = "Unknown"
		return resp
	}

	resp.EmployeeName = emp.FullName()
	resp.Department = emp.Department
	resp.Position = emp.Position
	resp.Email = emp.Email
	return resp
}

// CreateRequest implements leave.LeaveService. The request stores the
// leave type name as given; submitting against an unknown type is
// allowed and simply never counts against a configured balance.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	employeeID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Denormalize who this is so listings don't join per row.
	employeeName := "Unknown"
	department := ""
	position := ""
	email := ""
	if emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID); err == nil {
		employeeName = emp.FullName()
		department = emp.Department
		position = emp.Position
		email = emp.Email
	}

	now := time.Now().UTC()
	created, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Department:   department,
		Position:     position,
		Email:        email,
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Days:         req.Days,
		Reason:       req.Reason,
		Status:       leave.RequestPending,
		AppliedDate:  now,
		CreatedAt:    now,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// DecideRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DecideRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) error {
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

	return s.leaveRequestRepo.Decide(ctx, req.ID, leave.DecisionUpdate{
		Status:     leave.RequestStatus(req.Status),
		ApprovedBy: actorID,
		Comments:   req.Comments,
	})
}

func toRequestResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           lr.ID.Hex(),
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		Department:   lr.Department,
		Position:     lr.Position,
		Email:        lr.Email,
		LeaveType:    lr.LeaveType,
		StartDate:    lr.StartDate,
		EndDate:      lr.EndDate,
		Days:         lr.Days,
		Reason:       lr.Reason,
		Status:       string(lr.Status),
		AppliedDate:  lr.AppliedDate.Format("2006-01-02"),
		ApprovedBy:   lr.ApprovedBy,
		Comments:     lr.Comments,
	}

	if lr.ApprovedDate != nil {
		approvedDate := lr.ApprovedDate.Format("2006-01-02")
		resp.ApprovedDate = &approvedDate
	}

	return resp
}
