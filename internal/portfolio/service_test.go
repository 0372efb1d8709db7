package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSingletonOrEmpty_EmptyCollection(t *testing.T) {
	svc := NewService(NewMemoryStore())

	doc, err := svc.SingletonOrEmpty(context.Background(), CollectionSkills, "skills")
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Empty(t, doc["skills"])
	require.NotZero(t, doc["updated_at"])
}

func TestSingleton_EmptyReturnsNil(t *testing.T) {
	svc := NewService(NewMemoryStore())

	doc, err := svc.Singleton(context.Background(), CollectionPersonalInfo)
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestReplaceSingleton_FullReplace(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	_, err := svc.ReplaceSingleton(ctx, CollectionSkills, bson.M{"skills": []string{"Python"}})
	require.NoError(t, err)

	second, err := svc.ReplaceSingleton(ctx, CollectionSkills, bson.M{"skills": []string{"Go", "Rust"}})
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Rust"}, second["skills"])

	got, err := svc.SingletonOrEmpty(ctx, CollectionSkills, "skills")
	require.NoError(t, err)
	require.Equal(t, []string{"Go", "Rust"}, got["skills"])
}

func TestReplaceSingleton_AdvancesUpdatedAt(t *testing.T) {
	svc := NewService(NewMemoryStore())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	ctx := context.Background()

	first, err := svc.ReplaceSingleton(ctx, CollectionApproach, bson.M{"items": []string{"a"}})
	require.NoError(t, err)
	require.Equal(t, base, first["updated_at"])

	svc.now = func() time.Time { return base.Add(time.Hour) }
	second, err := svc.ReplaceSingleton(ctx, CollectionApproach, bson.M{"items": []string{"a"}})
	require.NoError(t, err)
	require.Equal(t, base.Add(time.Hour), second["updated_at"])
	require.Equal(t, first["items"], second["items"])
}

func TestCreateAndUpdateRecord_Timestamps(t *testing.T) {
	svc := NewService(NewMemoryStore())
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, CollectionProjects, bson.M{"title": "X"})
	require.NoError(t, err)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	require.Equal(t, base, created["created_at"])
	require.Equal(t, base, created["updated_at"])

	svc.now = func() time.Time { return base.Add(time.Hour) }
	updated, err := svc.UpdateRecord(ctx, CollectionProjects, id, bson.M{"title": "Y"})
	require.NoError(t, err)
	require.Equal(t, "Y", updated["title"])
	require.Equal(t, base, updated["created_at"], "created_at must be preserved")
	require.Equal(t, base.Add(time.Hour), updated["updated_at"])

	list, err := svc.ListRecords(ctx, CollectionProjects, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Y", list[0]["title"])
}

func TestUpdateRecord_Errors(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	_, err := svc.UpdateRecord(ctx, CollectionProjects, "not-a-hex-id", bson.M{"title": "X"})
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.UpdateRecord(ctx, CollectionProjects, "ffffffffffffffffffffffff", bson.M{"title": "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecord(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	require.ErrorIs(t, svc.DeleteRecord(ctx, CollectionProjects, "ffffffffffffffffffffffff"), ErrNotFound)
	require.ErrorIs(t, svc.DeleteRecord(ctx, CollectionProjects, "zzz"), ErrInvalidID)

	created, err := svc.CreateRecord(ctx, CollectionProjects, bson.M{"title": "X"})
	require.NoError(t, err)
	other, err := svc.CreateRecord(ctx, CollectionProjects, bson.M{"title": "keep"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(ctx, CollectionProjects, created["id"].(string)))

	list, err := svc.ListRecords(ctx, CollectionProjects, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, other["id"], list[0]["id"])
}

func TestContactMessages_NewestFirstAndRead(t *testing.T) {
	svc := NewService(NewMemoryStore())
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	svc.now = func() time.Time { return base }
	first, err := svc.CreateContactMessage(ctx, bson.M{"name": "A", "email": "a@b.com", "message": "hi"})
	require.NoError(t, err)
	require.Equal(t, false, first["read"])

	svc.now = func() time.Time { return base.Add(time.Minute) }
	second, err := svc.CreateContactMessage(ctx, bson.M{"name": "B", "email": "b@b.com", "message": "yo"})
	require.NoError(t, err)

	list, err := svc.ListRecords(ctx, CollectionContactMessages, true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second["id"], list[0]["id"], "newest message first")
	require.Equal(t, first["id"], list[1]["id"])

	require.NoError(t, svc.MarkMessageRead(ctx, first["id"].(string)))
	require.ErrorIs(t, svc.MarkMessageRead(ctx, "ffffffffffffffffffffffff"), ErrNotFound)

	list, err = svc.ListRecords(ctx, CollectionContactMessages, true)
	require.NoError(t, err)
	require.Equal(t, true, list[1]["read"])
}
