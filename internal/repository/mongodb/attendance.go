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

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	col *mongo.Collection
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{col: db.Collection(database.CollectionAttendance)}
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	res, err := r.col.InsertOne(ctx, att)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		att.ID = id
	}

	return att, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	var att attendance.Attendance
	err := r.col.FindOne(ctx, bson.M{"employeeId": employeeID, "date": date}).Decode(&att)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &att, nil
}

func (r *attendanceRepository) CompleteCheckOut(ctx context.Context, id primitive.ObjectID, update attendance.CheckOutUpdate) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"checkOut":     update.CheckOut,
			"checkOutTime": update.CheckOutTime,
			"workingHours": update.WorkingHours,
			"status":       update.Status,
			"updatedAt":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to complete check-out: %w", err)
	}
	if res.MatchedCount == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	query := bson.M{}
	if filter.Date != nil {
		query["date"] = *filter.Date
	}
	if filter.EmployeeID != nil {
		query["employeeId"] = *filter.EmployeeID
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		dateRange := bson.M{}
		if filter.StartDate != nil {
			dateRange["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateRange["$lt"] = *filter.EndDate
		}
		query["date"] = dateRange
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var records []attendance.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}

	return records, nil
}

func (r *attendanceRepository) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, startDate, endDate string) ([]attendance.Attendance, error) {
	query := bson.M{
		"employeeId": employeeID,
		"date":       bson.M{"$gte": startDate, "$lt": endDate},
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var records []attendance.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}

	return records, nil
}
