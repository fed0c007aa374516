package leave

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
)

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error) {
	actorID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	if !user.IsHRRole(user.Role(role)) && actorID != employeeID {
		return leave.BalanceResponse{}, leave.ErrUnauthorized
	}

	if year == 0 {
		year = time.Now().Year()
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	startDate := fmt.Sprintf("%d-01-01", year)
	endDate := fmt.Sprintf("%d-12-31", year)

	var (
		types    []leave.LeaveType
		approved []leave.LeaveRequest
		pending  []leave.LeaveRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		types, err = s.leaveTypeRepo.List(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = s.leaveRequestRepo.ListByEmployeeStatusAndRange(gctx, employeeID, leave.RequestApproved, startDate, endDate)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.leaveRequestRepo.ListByEmployeeStatusAndRange(gctx, employeeID, leave.RequestPending, startDate, endDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		Employee: leave.BalanceEmployee{
			EmployeeID: employeeID,
			Name:       emp.FullName(),
		},
		Year:    year,
		Balance: computeBalance(types, approved, pending),
	}, nil
}

// computeBalance folds a year's requests into one item per active leave
// type. Requests match a type by exact name; approved days consume the
// entitlement, pending days are reported but not subtracted. The carry
// forward cap never credits extra days here.
func computeBalance(types []leave.LeaveType, approved, pending []leave.LeaveRequest) []leave.BalanceItem {
	usedByType := make(map[string]float64, len(types))
	for _, lr := range approved {
		usedByType[lr.LeaveType] += lr.Days
	}

	pendingByType := make(map[string]float64, len(types))
	for _, lr := range pending {
		pendingByType[lr.LeaveType] += lr.Days
	}

	items := make([]leave.BalanceItem, 0, len(types))
	for _, lt := range types {
		used := usedByType[lt.Name]
		items = append(items, leave.BalanceItem{
			LeaveType:     lt.Name,
			Code:          lt.Code,
			TotalDays:     lt.TotalDays,
			UsedDays:      used,
			PendingDays:   pendingByType[lt.Name],
			AvailableDays: max(0, float64(lt.TotalDays)-used),
			IsPaid:        lt.IsPaid,
		})
	}

	return items
}
