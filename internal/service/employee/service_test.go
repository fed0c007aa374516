package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
)

// ===== TEST FAKES =====

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	for _, u := range f.users {
		if u.Email == newUser.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	newUser.ID = primitive.NewObjectID()
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmployeeID(_ context.Context, employeeID string) (user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByRole(_ context.Context, role user.Role) (bool, error) {
	for _, u := range f.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListEmployeeIDs(context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.users))
	for _, u := range f.users {
		ids = append(ids, u.EmployeeID)
	}
	return ids, nil
}

func (f *fakeUserRepo) UpdateEmail(_ context.Context, employeeID string, email string) error {
	for i := range f.users {
		if f.users[i].EmployeeID == employeeID {
			f.users[i].Email = email
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateActive(_ context.Context, employeeID string, isActive bool) error {
	for i := range f.users {
		if f.users[i].EmployeeID == employeeID {
			f.users[i].IsActive = isActive
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, employeeID string, passwordHash string, resetBy *string) error {
	for i := range f.users {
		if f.users[i].EmployeeID == employeeID {
			f.users[i].PasswordHash = passwordHash
			now := time.Now().UTC()
			f.users[i].PasswordUpdatedAt = &now
			if resetBy != nil {
				f.users[i].PasswordResetBy = resetBy
			}
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	for i := range f.users {
		if f.users[i].EmployeeID == employeeID {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	createErr error
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	if f.createErr != nil {
		return employee.Employee{}, f.createErr
	}
	emp.ID = primitive.NewObjectID()
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.Status != nil && emp.Status != *filter.Status {
			continue
		}
		if filter.ExcludeDepartment != nil && emp.Department == *filter.ExcludeDepartment {
			continue
		}
		if len(filter.EmployeeIDs) > 0 && !validator.IsInSlice(emp.EmployeeID, filter.EmployeeIDs) {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string, excludeEmployeeID string) (bool, error) {
	for _, emp := range f.employees {
		if emp.EmployeeID == excludeEmployeeID {
			continue
		}
		if emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	if !req.HasUpdates() {
		return employee.ErrNoFieldsToUpdate
	}
	for i := range f.employees {
		if f.employees[i].EmployeeID != req.EmployeeID {
			continue
		}
		if req.FirstName != nil {
			f.employees[i].FirstName = *req.FirstName
		}
		if req.LastName != nil {
			f.employees[i].LastName = *req.LastName
		}
		if req.Phone != nil {
			f.employees[i].Phone = *req.Phone
		}
		if req.Email != nil {
			f.employees[i].Email = *req.Email
		}
		if req.Department != nil {
			f.employees[i].Department = *req.Department
		}
		if req.Position != nil {
			f.employees[i].Position = *req.Position
		}
		if req.Salary != nil {
			f.employees[i].Salary = req.Salary
		}
		if req.Status != nil {
			f.employees[i].Status = employee.Status(*req.Status)
		}
		now := time.Now().UTC()
		f.employees[i].UpdatedAt = &now
		return nil
	}
	return employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) error {
	for i := range f.employees {
		if f.employees[i].EmployeeID == employeeID {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

// ===== TEST HELPERS =====

func authContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("employee-test-secret"), nil)
	token, _, err := ja.Encode(map[string]any{
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func seedAccount(t *testing.T, repo *fakeUserRepo, employeeID, email, password string, role user.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users = append(repo.users, user.User{
		ID:           primitive.NewObjectID(),
		EmployeeID:   employeeID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
}

func seedProfile(repo *fakeEmployeeRepo, employeeID, department string) {
	repo.employees = append(repo.employees, employee.Employee{
		ID:            primitive.NewObjectID(),
		EmployeeID:    employeeID,
		FirstName:     "Test",
		LastName:      employeeID,
		Email:         employeeID + "@example.com",
		Phone:         "5550000",
		Department:    department,
		Position:      "Engineer",
		Status:        employee.StatusActive,
		DateOfJoining: time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now().UTC(),
	})
}

func accountFor(t *testing.T, repo *fakeUserRepo, employeeID string) user.User {
	t.Helper()
	for _, u := range repo.users {
		if u.EmployeeID == employeeID {
			return u
		}
	}
	t.Fatalf("no account for %s", employeeID)
	return user.User{}
}

func profileFor(t *testing.T, repo *fakeEmployeeRepo, employeeID string) employee.Employee {
	t.Helper()
	for _, emp := range repo.employees {
		if emp.EmployeeID == employeeID {
			return emp
		}
	}
	t.Fatalf("no profile for %s", employeeID)
	return employee.Employee{}
}

// ===== ID ALLOCATION TESTS =====

func TestNextEmployeeID(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "EMP001"},
		{"sequential", []string{"EMP001", "EMP002"}, "EMP003"},
		{"reuses freed number", []string{"EMP001", "EMP003"}, "EMP002"},
		{"fills from the bottom", []string{"EMP002"}, "EMP001"},
		{"ignores foreign ids", []string{"ADMIN1"}, "EMP001"},
	}

	for _, c := range cases {
		if got := nextEmployeeID(c.existing); got != c.want {
			t.Errorf("%s: nextEmployeeID = %s, want %s", c.name, got, c.want)
		}
	}
}

// ===== CREATE TESTS =====

func TestEmployeeService_CreateEmployee_AllocatesIDAndAccount(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP001", "admin@example.com", "admin123", user.RoleHR)
	empRepo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(userRepo, empRepo)

	salary := map[string]any{"basic": float64(3000), "allowances": float64(500)}
	resp, err := svc.CreateEmployee(authContext(t, "EMP001", "hr"), employee.CreateEmployeeRequest{
		FirstName:  "Nadia",
		LastName:   "Putri",
		Email:      "nadia@example.com",
		Password:   "secret12",
		Phone:      "5550001",
		Department: "Engineering",
		Position:   "Engineer",
		Salary:     salary,
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP002", resp.EmployeeID)

	account := accountFor(t, userRepo, "EMP002")
	assert.Equal(t, "nadia@example.com", account.Email)
	assert.Equal(t, user.RoleEmployee, account.Role)
	assert.True(t, account.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret12")))

	profile := profileFor(t, empRepo, "EMP002")
	assert.Equal(t, "Nadia", profile.FirstName)
	assert.Equal(t, employee.StatusActive, profile.Status)
	assert.Equal(t, "/placeholder.svg", profile.ProfilePicture)
	assert.Equal(t, salary, profile.Salary)
	assert.False(t, profile.DateOfJoining.IsZero())
}

func TestEmployeeService_CreateEmployee_ReusesFreedID(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP001", "admin@example.com", "admin123", user.RoleHR)
	seedAccount(t, userRepo, "EMP003", "three@example.com", "secret12", user.RoleEmployee)
	svc := NewEmployeeService(userRepo, &fakeEmployeeRepo{})

	resp, err := svc.CreateEmployee(authContext(t, "EMP001", "hr"), employee.CreateEmployeeRequest{
		FirstName:  "Bayu",
		LastName:   "Santoso",
		Email:      "bayu@example.com",
		Password:   "secret12",
		Department: "Engineering",
		Position:   "Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, "EMP002", resp.EmployeeID)
}

func TestEmployeeService_CreateEmployee_RejectsTakenEmail(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP002", "nadia@example.com", "secret12", user.RoleEmployee)
	svc := NewEmployeeService(userRepo, &fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(authContext(t, "EMP001", "hr"), employee.CreateEmployeeRequest{
		FirstName:  "Other",
		LastName:   "Person",
		Email:      "nadia@example.com",
		Password:   "secret12",
		Department: "Engineering",
		Position:   "Engineer",
	})

	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_CreateEmployee_RequiresHR(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(authContext(t, "EMP002", "employee"), employee.CreateEmployeeRequest{
		FirstName:  "Nadia",
		LastName:   "Putri",
		Email:      "nadia@example.com",
		Password:   "secret12",
		Department: "Engineering",
		Position:   "Engineer",
	})

	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

func TestEmployeeService_CreateEmployee_ValidatesInput(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	_, err := svc.CreateEmployee(authContext(t, "EMP001", "hr"), employee.CreateEmployeeRequest{
		Email:    "not-an-email",
		Password: "abc",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "department")
	assert.Contains(t, fields, "position")
}

func TestEmployeeService_CreateEmployee_RollsBackAccountOnProfileFailure(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP001", "admin@example.com", "admin123", user.RoleHR)
	empRepo := &fakeEmployeeRepo{createErr: errors.New("insert failed")}
	svc := NewEmployeeService(userRepo, empRepo)

	_, err := svc.CreateEmployee(authContext(t, "EMP001", "hr"), employee.CreateEmployeeRequest{
		FirstName:  "Nadia",
		LastName:   "Putri",
		Email:      "nadia@example.com",
		Password:   "secret12",
		Department: "Engineering",
		Position:   "Engineer",
	})

	require.Error(t, err)
	// The orphaned login is removed so the email and ID stay free.
	ids, listErr := userRepo.ListEmployeeIDs(context.Background())
	require.NoError(t, listErr)
	assert.Equal(t, []string{"EMP001"}, ids)
}

// ===== READ TESTS =====

func TestEmployeeService_GetEmployee_FormatsResponse(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	resp, err := svc.GetEmployee(context.Background(), "EMP002")

	require.NoError(t, err)
	assert.Equal(t, "EMP002", resp.EmployeeID)
	assert.Equal(t, "2022-03-15", resp.DateOfJoining)
	assert.Equal(t, "active", resp.Status)
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	_, err := svc.GetEmployee(context.Background(), "EMP404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ListEmployees_ExcludesHRDepartment(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP001", employee.DepartmentHR)
	seedProfile(empRepo, "EMP002", "Engineering")
	seedProfile(empRepo, "EMP003", "Sales")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	employees, err := svc.ListEmployees(authContext(t, "EMP001", "hr"))

	require.NoError(t, err)
	require.Len(t, employees, 2)
	for _, emp := range employees {
		assert.NotEqual(t, employee.DepartmentHR, emp.Department)
	}
}

func TestEmployeeService_ListEmployees_RequiresHR(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	_, err := svc.ListEmployees(authContext(t, "EMP002", "employee"))

	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

// ===== UPDATE TESTS =====

func TestEmployeeService_UpdateEmployee_SelfServiceFields(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	phone := "5559999"
	err := svc.UpdateEmployee(authContext(t, "EMP002", "employee"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Phone:      &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, "5559999", profileFor(t, empRepo, "EMP002").Phone)
}

func TestEmployeeService_UpdateEmployee_HRFieldBlockedForSelf(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	err := svc.UpdateEmployee(authContext(t, "EMP002", "employee"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Salary:     map[string]any{"basic": float64(9999999)},
	})

	assert.ErrorIs(t, err, employee.ErrOnlyHRCanSetField)
}

func TestEmployeeService_UpdateEmployee_OtherEmployeeForbidden(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	phone := "5559999"
	err := svc.UpdateEmployee(authContext(t, "EMP003", "employee"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Phone:      &phone,
	})

	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

func TestEmployeeService_UpdateEmployee_EmailSyncsLoginAccount(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP002", "EMP002@example.com", "secret12", user.RoleEmployee)
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(userRepo, empRepo)

	email := "nadia.putri@example.com"
	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Email:      &email,
	})

	require.NoError(t, err)
	assert.Equal(t, email, profileFor(t, empRepo, "EMP002").Email)
	assert.Equal(t, email, accountFor(t, userRepo, "EMP002").Email)
}

func TestEmployeeService_UpdateEmployee_EmailConflict(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	seedProfile(empRepo, "EMP003", "Sales")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	taken := "EMP003@example.com"
	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Email:      &taken,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	// Keeping your own address is not a conflict.
	own := "EMP002@example.com"
	err = svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Email:      &own,
	})
	assert.NoError(t, err)
}

func TestEmployeeService_UpdateEmployee_MissingLoginAccountTolerated(t *testing.T) {
	// Profiles can exist without a login; the sync then has nothing to do.
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	email := "nadia.putri@example.com"
	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Email:      &email,
	})

	require.NoError(t, err)
	assert.Equal(t, email, profileFor(t, empRepo, "EMP002").Email)
}

func TestEmployeeService_UpdateEmployee_StatusTogglesLogin(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP002", "EMP002@example.com", "secret12", user.RoleEmployee)
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(userRepo, empRepo)

	status := string(employee.StatusInactive)
	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Status:     &status,
	})

	require.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, profileFor(t, empRepo, "EMP002").Status)
	assert.False(t, accountFor(t, userRepo, "EMP002").IsActive)
}

func TestEmployeeService_UpdateEmployee_NoFields(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{EmployeeID: "EMP002"})

	assert.ErrorIs(t, err, employee.ErrNoFieldsToUpdate)
}

func TestEmployeeService_UpdateEmployee_ValidatesInput(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	email := "not-an-email"
	status := "retired"
	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP002",
		Email:      &email,
		Status:     &status,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "status")
}

func TestEmployeeService_UpdateEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	phone := "5559999"
	err := svc.UpdateEmployee(authContext(t, "EMP001", "hr"), employee.UpdateEmployeeRequest{
		EmployeeID: "EMP404",
		Phone:      &phone,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== DELETE TESTS =====

func TestEmployeeService_DeleteEmployee_RemovesProfileAndLogin(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP002", "EMP002@example.com", "secret12", user.RoleEmployee)
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP002", "Engineering")
	svc := NewEmployeeService(userRepo, empRepo)

	err := svc.DeleteEmployee(authContext(t, "EMP001", "hr"), "EMP002")

	require.NoError(t, err)
	assert.Empty(t, empRepo.employees)
	assert.Empty(t, userRepo.users)
}

func TestEmployeeService_DeleteEmployee_SelfForbidden(t *testing.T) {
	empRepo := &fakeEmployeeRepo{}
	seedProfile(empRepo, "EMP001", employee.DepartmentHR)
	svc := NewEmployeeService(&fakeUserRepo{}, empRepo)

	err := svc.DeleteEmployee(authContext(t, "EMP001", "hr"), "EMP001")

	assert.ErrorIs(t, err, employee.ErrCannotDeleteSelf)
}

func TestEmployeeService_DeleteEmployee_RequiresHR(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	err := svc.DeleteEmployee(authContext(t, "EMP002", "employee"), "EMP003")

	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	err := svc.DeleteEmployee(authContext(t, "EMP001", "hr"), "EMP404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// ===== PASSWORD TESTS =====

func TestEmployeeService_ChangePassword_SelfNeedsCurrentPassword(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP002", "EMP002@example.com", "oldpass1", user.RoleEmployee)
	svc := NewEmployeeService(userRepo, &fakeEmployeeRepo{})
	ctx := authContext(t, "EMP002", "employee")

	err := svc.ChangePassword(ctx, employee.ChangePasswordRequest{
		EmployeeID:  "EMP002",
		NewPassword: "newpass1",
	})
	assert.ErrorIs(t, err, user.ErrPasswordRequired)

	wrong := "nope"
	err = svc.ChangePassword(ctx, employee.ChangePasswordRequest{
		EmployeeID:      "EMP002",
		CurrentPassword: &wrong,
		NewPassword:     "newpass1",
	})
	assert.ErrorIs(t, err, user.ErrPasswordIncorrect)

	current := "oldpass1"
	err = svc.ChangePassword(ctx, employee.ChangePasswordRequest{
		EmployeeID:      "EMP002",
		CurrentPassword: &current,
		NewPassword:     "newpass1",
	})
	require.NoError(t, err)

	account := accountFor(t, userRepo, "EMP002")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("newpass1")))
	assert.NotNil(t, account.PasswordUpdatedAt)
}

func TestEmployeeService_ChangePassword_HRSkipsCurrentPassword(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedAccount(t, userRepo, "EMP002", "EMP002@example.com", "oldpass1", user.RoleEmployee)
	svc := NewEmployeeService(userRepo, &fakeEmployeeRepo{})

	err := svc.ChangePassword(authContext(t, "EMP001", "hr"), employee.ChangePasswordRequest{
		EmployeeID:  "EMP002",
		NewPassword: "newpass1",
	})

	require.NoError(t, err)
	account := accountFor(t, userRepo, "EMP002")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("newpass1")))
}

func TestEmployeeService_ChangePassword_OtherEmployeeForbidden(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	err := svc.ChangePassword(authContext(t, "EMP003", "employee"), employee.ChangePasswordRequest{
		EmployeeID:  "EMP002",
		NewPassword: "newpass1",
	})

	assert.ErrorIs(t, err, employee.ErrUnauthorized)
}

func TestEmployeeService_ChangePassword_UnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	err := svc.ChangePassword(authContext(t, "EMP001", "hr"), employee.ChangePasswordRequest{
		EmployeeID:  "EMP404",
		NewPassword: "newpass1",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_ChangePassword_ValidatesLength(t *testing.T) {
	svc := NewEmployeeService(&fakeUserRepo{}, &fakeEmployeeRepo{})

	err := svc.ChangePassword(authContext(t, "EMP002", "employee"), employee.ChangePasswordRequest{
		EmployeeID:  "EMP002",
		NewPassword: "abc",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "newPassword")
}
