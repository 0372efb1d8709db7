package portfolio

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound means a well-formed identifier matched no record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID means the identifier is not well-formed for the store;
	// it is detected before any store round trip.
	ErrInvalidID = errors.New("invalid id")
)

// Collection names. Singleton collections hold at most one document; record
// collections hold independently identified documents.
const (
	CollectionPersonalInfo     = "personal_info"
	CollectionProjects         = "projects"
	CollectionWorkExperience   = "work_experience"
	CollectionTestimonials     = "testimonials"
	CollectionSkills           = "skills"
	CollectionApproach         = "approach"
	CollectionDashboardMetrics = "dashboard_metrics"
	CollectionCertifications   = "certifications"
	CollectionContactMessages  = "contact_messages"
)

// Store is the document-store collaborator the service commands against.
// Documents are generic maps: the API is a thin pass-through over stored
// content and typed validation happens at the request boundary, so the store
// never needs to know resource shapes. Returned documents carry a hex string
// under "id" and time.Time timestamps.
type Store interface {
	// FindSingleton reads the one document matching the empty filter.
	// Returns (nil, nil) when the collection is empty.
	FindSingleton(ctx context.Context, collection string) (bson.M, error)
	// UpsertSingleton sets all given fields on the one document matching the
	// empty filter, creating it when absent, and returns the stored document.
	UpsertSingleton(ctx context.Context, collection string, fields bson.M) (bson.M, error)

	FindAll(ctx context.Context, collection string, newestFirst bool) ([]bson.M, error)
	InsertOne(ctx context.Context, collection string, doc bson.M) (string, error)
	// UpdateByID sets the given fields on the identified document and returns
	// the updated document. ErrInvalidID for malformed ids, ErrNotFound when
	// nothing matched.
	UpdateByID(ctx context.Context, collection, id string, fields bson.M) (bson.M, error)
	SetField(ctx context.Context, collection, id, field string, value interface{}) error
	DeleteByID(ctx context.Context, collection, id string) error
}
