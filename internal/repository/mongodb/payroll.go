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

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	col *mongo.Collection
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{col: db.Collection(database.CollectionPayroll)}
}

// periodSort orders newest pay period first.
var periodSort = bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}}

func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}

	return p, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var p payroll.Payroll
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return &p, nil
}

func (r *payrollRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	query := bson.M{"employeeId": employeeID, "month": month, "year": year}

	var p payroll.Payroll
	if err := r.col.FindOne(ctx, query).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll record for period: %w", err)
	}

	return &p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, error) {
	query := bson.M{}
	if filter.Month != nil {
		query["month"] = *filter.Month
	}
	if filter.Year != nil {
		query["year"] = *filter.Year
	}
	if filter.EmployeeID != nil {
		query["employeeId"] = *filter.EmployeeID
	}

	return r.find(ctx, query)
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	return r.find(ctx, bson.M{"employeeId": employeeID})
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	return r.find(ctx, bson.M{"month": month, "year": year})
}

func (r *payrollRepository) find(ctx context.Context, query bson.M) ([]payroll.Payroll, error) {
	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(periodSort))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	var records []payroll.Payroll
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode payroll records: %w", err)
	}

	return records, nil
}

func (r *payrollRepository) Update(ctx context.Context, id string, fields payroll.UpdateFields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return payroll.ErrPayrollNotFound
	}

	set := bson.M{}
	if fields.Bonus != nil {
		set["bonus"] = *fields.Bonus
	}
	if fields.NetSalary != nil {
		set["netSalary"] = *fields.NetSalary
	}
	if fields.Deductions != nil {
		set["deductions"] = *fields.Deductions
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	if fields.PaidBy != nil {
		set["paidBy"] = *fields.PaidBy
	}
	if fields.PaidAt != nil {
		set["paidAt"] = *fields.PaidAt
	}
	if fields.Remarks != nil {
		set["remarks"] = *fields.Remarks
	}
	if len(set) == 0 {
		return payroll.ErrNoFieldsToUpdate
	}
	set["updatedBy"] = fields.UpdatedBy
	set["updatedAt"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if res.MatchedCount == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return payroll.ErrPayrollNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if res.DeletedCount == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
