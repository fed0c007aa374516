package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionUsers         = "users"
	CollectionEmployees     = "employees"
	CollectionAttendance    = "attendance"
	CollectionLeaveRequests = "leaverequests"
	CollectionLeaveTypes    = "leavetypes"
	CollectionPayroll       = "payroll"
)

type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the write paths rely on:
// concurrent duplicate generation or double check-in surfaces as a
// duplicate-key error instead of a second document.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionEmployees: {
			{
				Keys:    bson.D{{Key: "employeeId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionAttendance: {
			{
				Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionLeaveTypes: {
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionLeaveRequests: {
			{
				Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "startDate", Value: 1}},
			},
		},
		CollectionPayroll: {
			{
				Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "month", Value: 1}, {Key: "year", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := d.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	return nil
}
