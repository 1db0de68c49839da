package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

const activityCollection = "project_activity"

// ActivityRepository is the insert-only activity log. Entries live in their
// own collection so appends never read-modify-write the project document.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID string             `bson:"project_id"`
	Action    string             `bson:"action"`
	ActorID   string             `bson:"actor_id"`
	ActorName string             `bson:"actor_name"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (r *ActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	_, err := r.coll.InsertOne(ctx, activityDoc{
		ProjectID: entry.ProjectID,
		Action:    entry.Action,
		ActorID:   entry.ActorID,
		ActorName: entry.ActorName,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.ActivityEntry, error) {
	cur, err := r.coll.Find(ctx, bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	entries := []*domain.ActivityEntry{}
	for cur.Next(ctx) {
		var d activityDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, &domain.ActivityEntry{
			ID:        d.ID.Hex(),
			ProjectID: d.ProjectID,
			Action:    d.Action,
			ActorID:   d.ActorID,
			ActorName: d.ActorName,
			Timestamp: d.Timestamp,
		})
	}
	return entries, cur.Err()
}

func (r *ActivityRepository) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

// EnsureIndexes creates the project scoping index.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
