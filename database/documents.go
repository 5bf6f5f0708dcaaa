package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDatabaseUnavailable is returned when no database handle was configured.
var ErrDatabaseUnavailable = errors.New("database not available")

// CreateDocument inserts one document into the named collection and returns
// the generated id as a hex string. created_at and updated_at timestamps are
// stamped here so callers never manage them.
func CreateDocument(collection string, doc any) (string, error) {
	if DB == nil {
		return "", ErrDatabaseUnavailable
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result, err := DB.Collection(collection).InsertOne(ctx, fields)
	if err != nil {
		return "", err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("inserted id is not an ObjectID")
	}
	return id.Hex(), nil
}

// GetDocuments returns the documents matching filter in natural order.
// A limit of zero or less means no explicit limit. One Find round-trip,
// no retry.
func GetDocuments(collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if DB == nil {
		return nil, ErrDatabaseUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	cursor, err := DB.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
