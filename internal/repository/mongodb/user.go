package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	col *mongo.Collection
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{col: db.Collection(database.CollectionUsers)}
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	res, err := r.col.InsertOne(ctx, newUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		newUser.ID = id
	}

	return newUser, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	var u user.User
	err := r.col.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by employee id: %w", err)
	}

	return u, nil
}

func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to count users by email: %w", err)
	}

	return count > 0, nil
}

func (r *userRepositoryImpl) ExistsByRole(ctx context.Context, role user.Role) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return false, fmt.Errorf("failed to count users by role: %w", err)
	}

	return count > 0, nil
}

func (r *userRepositoryImpl) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			EmployeeID string `bson:"employeeId"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		ids = append(ids, doc.EmployeeID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return ids, nil
}

func (r *userRepositoryImpl) UpdateEmail(ctx context.Context, employeeID string, email string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"employeeId": employeeID},
		bson.M{"$set": bson.M{"email": email}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.ErrUserEmailExists
		}
		return fmt.Errorf("failed to update user email: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) UpdateActive(ctx context.Context, employeeID string, isActive bool) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"employeeId": employeeID},
		bson.M{"$set": bson.M{"isActive": isActive}},
	)
	if err != nil {
		return fmt.Errorf("failed to update user active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, employeeID string, passwordHash string, resetBy *string) error {
	set := bson.M{
		"password":          passwordHash,
		"passwordUpdatedAt": time.Now().UTC(),
	}
	if resetBy != nil {
		set["passwordResetBy"] = *resetBy
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"employeeId": employeeID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	if res.MatchedCount == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"employeeId": employeeID}); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
