package database

import (
	"context"
	"errors"

	"github.com/padraicob/lotto-backend/models"
	"github.com/padraicob/lotto-backend/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const drawCollection = "draws"

// DrawStore reads draw result documents keyed by their yyyy-MM-dd date
// string. All operations are read-only; ingestion happens outside this
// service.
type DrawStore struct {
	collection *mongo.Collection
}

// NewDrawStore creates a DrawStore over the given database.
func NewDrawStore(db *mongo.Database) *DrawStore {
	return &DrawStore{collection: db.Collection(drawCollection)}
}

// FindByDateKey returns the draw for the given date key, or (nil, nil)
// when no document exists for that date.
func (s *DrawStore) FindByDateKey(ctx context.Context, dateKey string) (*models.DrawResult, error) {
	var result models.DrawResult
	err := s.collection.FindOne(ctx, bson.M{"_id": dateKey}).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, shared.WrapError(err, shared.ErrorCategoryDatabase, "FIND_BY_DATE_FAILED", "DrawStore", "FindByDateKey", true)
	}
	return &result, nil
}

// FindLatest returns the most recent draw in the archive, or (nil, nil)
// when the collection is empty.
func (s *DrawStore) FindLatest(ctx context.Context) (*models.DrawResult, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})

	var result models.DrawResult
	err := s.collection.FindOne(ctx, bson.M{}, opts).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, shared.WrapError(err, shared.ErrorCategoryDatabase, "FIND_LATEST_FAILED", "DrawStore", "FindLatest", true)
	}
	return &result, nil
}

// FindPastExcluding returns up to limit draws before and excluding the
// given date key, newest first.
func (s *DrawStore) FindPastExcluding(ctx context.Context, dateKey string, limit int) ([]models.DrawResult, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$lt": dateKey}}, opts)
	if err != nil {
		return nil, shared.WrapError(err, shared.ErrorCategoryDatabase, "FIND_PAST_FAILED", "DrawStore", "FindPastExcluding", true)
	}
	defer cursor.Close(ctx)

	var results []models.DrawResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, shared.WrapError(err, shared.ErrorCategoryDatabase, "DECODE_PAST_FAILED", "DrawStore", "FindPastExcluding", false)
	}
	return results, nil
}

// FindPage returns one page of the archive, newest first, along with
// the total document count.
func (s *DrawStore) FindPage(ctx context.Context, page, pageSize int) ([]models.DrawResult, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, shared.WrapError(err, shared.ErrorCategoryDatabase, "COUNT_FAILED", "DrawStore", "FindPage", true)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, shared.WrapError(err, shared.ErrorCategoryDatabase, "FIND_PAGE_FAILED", "DrawStore", "FindPage", true)
	}
	defer cursor.Close(ctx)

	var results []models.DrawResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, shared.WrapError(err, shared.ErrorCategoryDatabase, "DECODE_PAGE_FAILED", "DrawStore", "FindPage", false)
	}
	return results, total, nil
}
