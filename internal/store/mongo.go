package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"textwatch/internal/model"
)

// Store is the MongoDB gateway. Connect must succeed before any read
// operation; reads on a disconnected store return ErrNotConnected.
type Store struct {
	uri            string
	database       string
	collection     string
	textField      string
	connectTimeout time.Duration
	logger         *zap.SugaredLogger

	client *mongo.Client
	coll   *mongo.Collection
}

// New creates a Store for the given connection settings. textField names the
// document field holding the text under analysis.
func New(uri, database, collection, textField string, connectTimeout time.Duration, logger *zap.SugaredLogger) *Store {
	return &Store{
		uri:            uri,
		database:       database,
		collection:     collection,
		textField:      textField,
		connectTimeout: connectTimeout,
		logger:         logger,
	}
}

// Connect establishes and verifies the connection. Calling it on an already
// connected store is a no-op. Failure leaves the store disconnected and is
// reported loudly to the caller.
func (s *Store) Connect(ctx context.Context) error {
	if s.coll != nil {
		return nil
	}

	opts := options.Client().
		ApplyURI(s.uri).
		SetServerSelectionTimeout(s.connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("ping: %w", err)
	}

	s.client = client
	s.coll = client.Database(s.database).Collection(s.collection)
	s.logger.Infow("connected to store", "database", s.database, "collection", s.collection)
	return nil
}

// Connected reports whether Connect has succeeded.
func (s *Store) Connected() bool {
	return s.coll != nil
}

// Disconnect closes the connection. Safe to call on a disconnected store.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.coll = nil
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.logger.Info("disconnected from store")
	return nil
}

// FetchAll returns every record in the collection. Identifiers are coerced
// to strings, the configured text field maps to Record.Text, and all other
// fields pass through in Record.Fields.
func (s *Store) FetchAll(ctx context.Context) ([]model.Record, error) {
	if s.coll == nil {
		return nil, ErrNotConnected
	}

	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, &OpError{Op: "find", Err: err}
	}
	defer cur.Close(ctx)

	var records []model.Record
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, &OpError{Op: "decode", Err: err}
		}
		records = append(records, s.toRecord(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, &OpError{Op: "cursor", Err: err}
	}

	s.logger.Infow("fetched records", "count", len(records))
	return records, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	if s.coll == nil {
		return 0, ErrNotConnected
	}

	count, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, &OpError{Op: "count", Err: err}
	}
	return count, nil
}

// Sample returns one raw document for schema inspection, with its identifier
// coerced to a string. A nil map with nil error means the collection is empty.
func (s *Store) Sample(ctx context.Context) (map[string]any, error) {
	if s.coll == nil {
		return nil, ErrNotConnected
	}

	var doc bson.M
	err := s.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, &OpError{Op: "sample", Err: err}
	}

	if id, ok := doc["_id"]; ok {
		doc["_id"] = coerceID(id)
	}
	return doc, nil
}

// toRecord splits a raw document into identifier, text, and passthrough fields.
func (s *Store) toRecord(doc bson.M) model.Record {
	rec := model.Record{}

	if id, ok := doc["_id"]; ok {
		rec.ID = coerceID(id)
	}
	if text, ok := doc[s.textField].(string); ok {
		rec.Text = text
	}

	for k, v := range doc {
		if k == "_id" || k == s.textField {
			continue
		}
		if rec.Fields == nil {
			rec.Fields = make(map[string]any)
		}
		rec.Fields[k] = v
	}

	return rec
}

// coerceID renders any identifier value as a string.
func coerceID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
