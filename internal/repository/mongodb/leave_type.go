package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	col *mongo.Collection
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{col: db.Collection(database.CollectionLeaveTypes)}
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	res, err := r.col.InsertOne(ctx, lt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		lt.ID = id
	}

	return lt, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var lt leave.LeaveType
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&lt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave type: %w", err)
	}

	return &lt, nil
}

func (r *leaveTypeRepositoryImpl) GetByCode(ctx context.Context, code string) (*leave.LeaveType, error) {
	var lt leave.LeaveType
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&lt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave type by code: %w", err)
	}

	return &lt, nil
}

func (r *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string, excludeID string) (*leave.LeaveType, error) {
	query := bson.M{
		"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"},
	}
	if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
		query["_id"] = bson.M{"$ne": oid}
	}

	var lt leave.LeaveType
	if err := r.col.FindOne(ctx, query).Decode(&lt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get leave type by name: %w", err)
	}

	return &lt, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	query := bson.M{}
	if activeOnly {
		query["isActive"] = true
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	var types []leave.LeaveType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode leave types: %w", err)
	}

	return types, nil
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, req leave.UpdateLeaveTypeRequest, updatedBy string) error {
	oid, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return leave.ErrLeaveTypeNotFound
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.TotalDays != nil {
		set["totalDays"] = *req.TotalDays
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.CarryForward != nil {
		set["carryForward"] = *req.CarryForward
		if !*req.CarryForward {
			set["maxCarryForward"] = 0
		}
	}
	// An explicit cap wins over the zeroing above.
	if req.MaxCarryForward != nil {
		set["maxCarryForward"] = *req.MaxCarryForward
	}
	if req.IsPaid != nil {
		set["isPaid"] = *req.IsPaid
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if len(set) == 0 {
		return leave.ErrNoFieldsToUpdate
	}
	set["updatedBy"] = updatedBy
	set["updatedAt"] = time.Now().UTC()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	if res.MatchedCount == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}

func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return leave.ErrLeaveTypeNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	if res.DeletedCount == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}
