package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	col *mongo.Collection
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{col: db.Collection(database.CollectionLeaveRequests)}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	res, err := r.col.InsertOne(ctx, lr)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		lr.ID = id
	}

	return lr, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	query := bson.M{}
	if filter.EmployeeID != nil {
		query["employeeId"] = *filter.EmployeeID
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "appliedDate", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var requests []leave.LeaveRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeStatusAndRange(ctx context.Context, employeeID string, status leave.RequestStatus, startDate, endDate string) ([]leave.LeaveRequest, error) {
	query := bson.M{
		"employeeId": employeeID,
		"status":     status,
		"startDate":  bson.M{"$gte": startDate, "$lte": endDate},
	}

	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var requests []leave.LeaveRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode leave requests: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, id string, update leave.DecisionUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return leave.ErrLeaveRequestNotFound
	}

	set := bson.M{
		"status":       update.Status,
		"approvedBy":   update.ApprovedBy,
		"approvedDate": time.Now().UTC(),
	}
	if update.Comments != nil {
		set["comments"] = *update.Comments
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to decide leave request: %w", err)
	}
	if res.MatchedCount == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func (r *leaveRequestRepositoryImpl) ExistsByLeaveTypeName(ctx context.Context, name string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"leaveType": name})
	if err != nil {
		return false, fmt.Errorf("failed to count leave requests by type: %w", err)
	}

	return count > 0, nil
}
