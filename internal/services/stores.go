package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecobytes/site-api/internal/models"
	"github.com/ecobytes/site-api/internal/observability"
	"github.com/ecobytes/site-api/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cache is the subset of the traced Redis client the services use.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// QuoteStore persists quote requests.
type QuoteStore interface {
	InsertQuote(ctx context.Context, quote *models.Quote) error
}

// SubscriberStore persists newsletter subscriptions. InsertSubscriber returns
// models.ErrAlreadySubscribed when the normalized address is already stored.
type SubscriberStore interface {
	InsertSubscriber(ctx context.Context, sub *models.Subscriber) error
	CountSubscribers(ctx context.Context) (int64, error)
}

// MongoQuoteStore stores quotes in a MongoDB collection.
type MongoQuoteStore struct {
	collection *mongo.Collection
}

func NewMongoQuoteStore(db *mongo.Database, collection string) *MongoQuoteStore {
	return &MongoQuoteStore{collection: db.Collection(collection)}
}

func (s *MongoQuoteStore) InsertQuote(ctx context.Context, quote *models.Quote) error {
	ctx, span := utils.TraceDatabaseInsert(ctx, s.collection.Name())
	defer span.End()

	if _, err := utils.InsertOneWithTimeout(ctx, s.collection, quote, utils.DefaultQueryTimeout); err != nil {
		observability.DatabaseOperations.WithLabelValues("insert_quote", "error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"quote.id": quote.ID})
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert_quote", "success").Inc()
	return nil
}

// MongoSubscriberStore stores newsletter subscribers in a MongoDB collection
// with a unique index on email_normalized.
type MongoSubscriberStore struct {
	collection *mongo.Collection
}

func NewMongoSubscriberStore(db *mongo.Database, collection string) *MongoSubscriberStore {
	return &MongoSubscriberStore{collection: db.Collection(collection)}
}

func (s *MongoSubscriberStore) InsertSubscriber(ctx context.Context, sub *models.Subscriber) error {
	ctx, span := utils.TraceDatabaseInsert(ctx, s.collection.Name())
	defer span.End()

	if _, err := utils.InsertOneWithTimeout(ctx, s.collection, sub, utils.DefaultQueryTimeout); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			observability.DatabaseOperations.WithLabelValues("insert_subscriber", "duplicate").Inc()
			return models.ErrAlreadySubscribed
		}
		observability.DatabaseOperations.WithLabelValues("insert_subscriber", "error").Inc()
		utils.RecordErrorInSpan(span, err, nil)
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert_subscriber", "success").Inc()
	return nil
}

func (s *MongoSubscriberStore) CountSubscribers(ctx context.Context) (int64, error) {
	ctx, span := utils.TraceDatabaseCount(ctx, s.collection.Name(), "all")
	defer span.End()

	n, err := utils.CountDocumentsWithTimeout(ctx, s.collection, nil, utils.DefaultQueryTimeout)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("count_subscribers", "error").Inc()
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("count_subscribers", "success").Inc()
	return n, nil
}
