package portfolio

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database.
//
// Singleton collections rely on the empty-filter FindOneAndUpdate upsert: the
// store resolves concurrent create races atomically (last writer wins on the
// {} match), and reads go through FindOne so a duplicate produced by a race
// would be shadowed rather than surfaced. This mirrors the documented
// weak-uniqueness policy instead of adding a unique index.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// normalize rewrites a decoded document for the API surface: ObjectID becomes
// a hex string under "id" and BSON datetimes become time.Time so they
// serialize as RFC 3339.
func normalize(doc bson.M) bson.M {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["id"] = oid.Hex()
		delete(doc, "_id")
	}
	for k, v := range doc {
		if dt, ok := v.(primitive.DateTime); ok {
			doc[k] = dt.Time().UTC()
		}
	}
	return doc
}

func (s *MongoStore) FindSingleton(ctx context.Context, collection string) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find singleton %s: %w", collection, err)
	}
	return normalize(doc), nil
}

func (s *MongoStore) UpsertSingleton(ctx context.Context, collection string, fields bson.M) (bson.M, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc bson.M
	err := s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": fields}, opts).
		Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("upsert singleton %s: %w", collection, err)
	}
	return normalize(doc), nil
}

func (s *MongoStore) FindAll(ctx context.Context, collection string, newestFirst bool) ([]bson.M, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find all %s: %w", collection, err)
	}
	defer cur.Close(ctx)
	out := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
		out = append(out, normalize(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", collection, err)
	}
	return out, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoStore) UpdateByID(ctx context.Context, collection, id string, fields bson.M) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bson.M
	err = s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).
		Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", collection, err)
	}
	return normalize(doc), nil
}

func (s *MongoStore) SetField(ctx context.Context, collection, id, field string, value interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.db.Collection(collection).
		UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("set field %s.%s: %w", collection, field, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
