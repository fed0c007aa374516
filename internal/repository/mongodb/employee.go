package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{col: db.Collection(database.CollectionEmployees)}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	res, err := r.col.InsertOne(ctx, emp)
	if err != nil {
		// The unique index is on employeeId; a duplicate here means two
		// concurrent creates were handed the same sequence number.
		return employee.Employee{}, fmt.Errorf("failed to create employee %s: %w", emp.EmployeeID, err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		emp.ID = id
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	var emp employee.Employee
	err := r.col.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.ExcludeDepartment != nil {
		query["department"] = bson.M{"$ne": *filter.ExcludeDepartment}
	}
	if len(filter.EmployeeIDs) > 0 {
		query["employeeId"] = bson.M{"$in": filter.EmployeeIDs}
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "employeeId", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var employees []employee.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeEmployeeID string) (bool, error) {
	query := bson.M{"email": email}
	if excludeEmployeeID != "" {
		query["employeeId"] = bson.M{"$ne": excludeEmployeeID}
	}

	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to count employees by email: %w", err)
	}

	return count > 0, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	set := bson.M{}
	if req.FirstName != nil {
		set["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		set["lastName"] = *req.LastName
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Position != nil {
		set["position"] = *req.Position
	}
	if req.Salary != nil {
		set["salary"] = req.Salary
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if len(set) == 0 {
		return employee.ErrNoFieldsToUpdate
	}
	set["updatedAt"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"employeeId": req.EmployeeID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"employeeId": employeeID})
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
