package portfolio

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Service applies the content rules shared by every resource: timestamp
// stamping, zero-value defaults for empty singletons, and the read flag on
// contact messages. It owns no state beyond the injected store; every
// operation is an independent request/response interaction.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Singleton returns the raw singleton document, nil when the collection is
// empty. Used by personal info, where absence is a 404 at the API surface.
func (s *Service) Singleton(ctx context.Context, collection string) (bson.M, error) {
	return s.store.FindSingleton(ctx, collection)
}

// SingletonOrEmpty returns the singleton document, or a zero-value payload
// (empty list under listField, current timestamp) when the collection is
// empty. Emptiness is valid initial state, never an error.
func (s *Service) SingletonOrEmpty(ctx context.Context, collection, listField string) (bson.M, error) {
	doc, err := s.store.FindSingleton(ctx, collection)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return bson.M{listField: []interface{}{}, "updated_at": s.now().UTC()}, nil
	}
	return doc, nil
}

// ReplaceSingleton stamps updated_at and replaces the singleton's payload
// fields wholesale, creating the document when absent. Calling it twice with
// the same payload yields the same stored state modulo the advancing
// timestamp.
func (s *Service) ReplaceSingleton(ctx context.Context, collection string, fields bson.M) (bson.M, error) {
	fields["updated_at"] = s.now().UTC()
	return s.store.UpsertSingleton(ctx, collection, fields)
}

// ListRecords returns all records of a collection. Contact messages ask for
// newest-first ordering; other collections are unordered.
func (s *Service) ListRecords(ctx context.Context, collection string, newestFirst bool) ([]bson.M, error) {
	return s.store.FindAll(ctx, collection, newestFirst)
}

// CreateRecord stamps created_at/updated_at, persists the record and returns
// it with the store-generated identifier.
func (s *Service) CreateRecord(ctx context.Context, collection string, fields bson.M) (bson.M, error) {
	now := s.now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now
	id, err := s.store.InsertOne(ctx, collection, fields)
	if err != nil {
		return nil, err
	}
	doc := make(bson.M, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["id"] = id
	return doc, nil
}

// UpdateRecord fully replaces a record's payload fields, refreshing
// updated_at and preserving created_at.
func (s *Service) UpdateRecord(ctx context.Context, collection, id string, fields bson.M) (bson.M, error) {
	fields["updated_at"] = s.now().UTC()
	return s.store.UpdateByID(ctx, collection, id, fields)
}

func (s *Service) DeleteRecord(ctx context.Context, collection, id string) error {
	return s.store.DeleteByID(ctx, collection, id)
}

// CreateContactMessage stores a public contact-form submission, unread.
func (s *Service) CreateContactMessage(ctx context.Context, fields bson.M) (bson.M, error) {
	fields["read"] = false
	return s.CreateRecord(ctx, CollectionContactMessages, fields)
}

// MarkMessageRead flips the read flag on a contact message.
func (s *Service) MarkMessageRead(ctx context.Context, id string) error {
	return s.store.SetField(ctx, CollectionContactMessages, id, "read", true)
}
