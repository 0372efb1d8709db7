package portfolio

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by unit tests and local development
// without a MongoDB instance. Identifiers are ObjectID hex strings so the
// well-formedness rules match the Mongo-backed store exactly.
type MemoryStore struct {
	mu   sync.RWMutex
	cols map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cols: make(map[string][]bson.M)}
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) FindSingleton(ctx context.Context, collection string) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.cols[collection]
	if len(docs) == 0 {
		return nil, nil
	}
	return cloneDoc(docs[0]), nil
}

func (s *MemoryStore) UpsertSingleton(ctx context.Context, collection string, fields bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.cols[collection]
	if len(docs) == 0 {
		doc := cloneDoc(fields)
		doc["id"] = primitive.NewObjectID().Hex()
		s.cols[collection] = []bson.M{doc}
		return cloneDoc(doc), nil
	}
	doc := docs[0]
	for k, v := range fields {
		doc[k] = v
	}
	return cloneDoc(doc), nil
}

func (s *MemoryStore) FindAll(ctx context.Context, collection string, newestFirst bool) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.cols[collection]
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, cloneDoc(d))
	}
	if newestFirst {
		sort.SliceStable(out, func(i, j int) bool {
			ti, _ := out[i]["created_at"].(time.Time)
			tj, _ := out[j]["created_at"].(time.Time)
			return ti.After(tj)
		})
	}
	return out, nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := cloneDoc(doc)
	id := primitive.NewObjectID().Hex()
	stored["id"] = id
	s.cols[collection] = append(s.cols[collection], stored)
	return id, nil
}

func (s *MemoryStore) UpdateByID(ctx context.Context, collection, id string, fields bson.M) (bson.M, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.cols[collection] {
		if doc["id"] == id {
			for k, v := range fields {
				doc[k] = v
			}
			return cloneDoc(doc), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SetField(ctx context.Context, collection, id, field string, value interface{}) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.cols[collection] {
		if doc["id"] == id {
			doc[field] = value
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteByID(ctx context.Context, collection, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.cols[collection]
	for i, doc := range docs {
		if doc["id"] == id {
			s.cols[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
