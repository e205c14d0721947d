// Package mongo stores summarization history in MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sweetpotato0/condense/config"
	"github.com/sweetpotato0/condense/history"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds MongoDB connection configuration.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// DefaultConfig returns default MongoDB configuration.
func DefaultConfig() *Config {
	return &Config{
		URI:        "mongodb://localhost:27017",
		Database:   "condense",
		Collection: "summaries",
	}
}

// mongoRecord is the internal representation for MongoDB.
type mongoRecord struct {
	ID         string    `bson:"_id"`
	Source     string    `bson:"source"`
	Model      string    `bson:"model"`
	Notice     string    `bson:"notice,omitempty"`
	Summary    string    `bson:"summary"`
	InputWords int       `bson:"input_words"`
	DurationMs int64     `bson:"duration_ms"`
	CreatedAt  time.Time `bson:"created_at"`
}

// Store implements history.Store on MongoDB.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New connects to MongoDB and prepares the history collection.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := config.ValidateMongoConfig(cfg.URI, cfg.Database, cfg.Collection); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo history: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo history: ping: %w", err)
	}

	return &Store{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Append implements history.Store.
func (s *Store) Append(ctx context.Context, rec *history.Record) error {
	if rec == nil {
		return fmt.Errorf("mongo history: record cannot be nil")
	}
	doc := mongoRecord{
		ID:         rec.ID,
		Source:     rec.Source,
		Model:      rec.Model,
		Notice:     rec.Notice,
		Summary:    rec.Summary,
		InputWords: rec.InputWords,
		DurationMs: rec.Duration.Milliseconds(),
		CreatedAt:  rec.CreatedAt,
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongo history: insert: %w", err)
	}
	return nil
}

// Recent implements history.Store.
func (s *Store) Recent(ctx context.Context, limit int) ([]*history.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo history: find: %w", err)
	}
	defer cur.Close(ctx)

	var recs []*history.Record
	for cur.Next(ctx) {
		var doc mongoRecord
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo history: decode: %w", err)
		}
		recs = append(recs, &history.Record{
			ID:         doc.ID,
			Source:     doc.Source,
			Model:      doc.Model,
			Notice:     doc.Notice,
			Summary:    doc.Summary,
			InputWords: doc.InputWords,
			Duration:   time.Duration(doc.DurationMs) * time.Millisecond,
			CreatedAt:  doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo history: cursor: %w", err)
	}
	return recs, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
