package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestStore() *Store {
	return New("mongodb://localhost:27017/", "testdb", "records", "Text", time.Second, zap.NewNop().Sugar())
}

func TestStore_ReadsBeforeConnect(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	if _, err := s.FetchAll(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected from FetchAll, got %v", err)
	}
	if _, err := s.Count(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected from Count, got %v", err)
	}
	if _, err := s.Sample(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected from Sample, got %v", err)
	}
}

func TestStore_DisconnectWithoutConnect(t *testing.T) {
	s := newTestStore()

	if err := s.Disconnect(context.Background()); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
	if s.Connected() {
		t.Error("Expected store to report disconnected")
	}
}

func TestStore_ToRecord_ObjectIDCoercion(t *testing.T) {
	s := newTestStore()
	oid := primitive.NewObjectID()

	rec := s.toRecord(bson.M{
		"_id":    oid,
		"Text":   "some flagged text",
		"source": "scraper",
		"score":  3,
	})

	if rec.ID != oid.Hex() {
		t.Errorf("Expected hex identifier %q, got %q", oid.Hex(), rec.ID)
	}
	if rec.Text != "some flagged text" {
		t.Errorf("Expected text field mapped, got %q", rec.Text)
	}
	if len(rec.Fields) != 2 {
		t.Fatalf("Expected 2 passthrough fields, got %d", len(rec.Fields))
	}
	if rec.Fields["source"] != "scraper" {
		t.Errorf("Expected passthrough field 'source', got %v", rec.Fields["source"])
	}
}

func TestStore_ToRecord_NonObjectIDAndMissingText(t *testing.T) {
	s := newTestStore()

	rec := s.toRecord(bson.M{"_id": int64(42)})
	if rec.ID != "42" {
		t.Errorf("Expected stringified identifier '42', got %q", rec.ID)
	}
	if rec.Text != "" {
		t.Errorf("Expected empty text for missing field, got %q", rec.Text)
	}
	if rec.Fields != nil {
		t.Errorf("Expected no passthrough fields, got %v", rec.Fields)
	}
}

func TestOpError_WrapsCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := &OpError{Op: "find", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected OpError to unwrap to its cause")
	}

	var opErr *OpError
	if !errors.As(error(err), &opErr) {
		t.Error("Expected errors.As to match *OpError")
	}
}
