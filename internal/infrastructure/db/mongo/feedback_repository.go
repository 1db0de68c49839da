package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

const feedbackCollection = "feedback"

type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(feedbackCollection)}
}

type coordinatesDoc struct {
	X      float64 `bson:"x"`
	Y      float64 `bson:"y"`
	Width  float64 `bson:"width"`
	Height float64 `bson:"height"`
}

type feedbackDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Content     string             `bson:"content"`
	FileID      string             `bson:"file_id"`
	ProjectID   string             `bson:"project_id"`
	CreatedBy   string             `bson:"created_by"`
	CreatorName string             `bson:"creator_name"`
	Status      string             `bson:"status"`
	Coordinates coordinatesDoc     `bson:"coordinates"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d feedbackDoc) toDomain() *domain.Feedback {
	return &domain.Feedback{
		ID:          d.ID.Hex(),
		Content:     d.Content,
		FileID:      d.FileID,
		ProjectID:   d.ProjectID,
		CreatedBy:   d.CreatedBy,
		CreatorName: d.CreatorName,
		Status:      domain.FeedbackStatus(d.Status),
		Coordinates: domain.Coordinates{X: d.Coordinates.X, Y: d.Coordinates.Y, Width: d.Coordinates.Width, Height: d.Coordinates.Height},
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toFeedbackDoc(fb *domain.Feedback) feedbackDoc {
	return feedbackDoc{
		Content:     fb.Content,
		FileID:      fb.FileID,
		ProjectID:   fb.ProjectID,
		CreatedBy:   fb.CreatedBy,
		CreatorName: fb.CreatorName,
		Status:      string(fb.Status),
		Coordinates: coordinatesDoc{X: fb.Coordinates.X, Y: fb.Coordinates.Y, Width: fb.Coordinates.Width, Height: fb.Coordinates.Height},
		CreatedAt:   fb.CreatedAt,
		UpdatedAt:   fb.UpdatedAt,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	res, err := r.coll.InsertOne(ctx, toFeedbackDoc(fb))
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	created := *fb
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFeedbackNotFound
	}

	var d feedbackDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return d.toDomain(), nil
}

func (r *FeedbackRepository) ListByFile(ctx context.Context, fileID string) ([]*domain.Feedback, error) {
	cur, err := r.coll.Find(ctx, bson.M{"file_id": fileID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer cur.Close(ctx)

	items := []*domain.Feedback{}
	for cur.Next(ctx) {
		var d feedbackDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		items = append(items, d.toDomain())
	}
	return items, cur.Err()
}

func (r *FeedbackRepository) Update(ctx context.Context, fb *domain.Feedback) error {
	oid, err := primitive.ObjectIDFromHex(fb.ID)
	if err != nil {
		return domain.ErrFeedbackNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": toFeedbackDoc(fb)})
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFeedbackNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepository) DeleteByFile(ctx context.Context, fileID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"file_id": fileID})
	if err != nil {
		return fmt.Errorf("delete feedback by file: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete feedback by project: %w", err)
	}
	return nil
}

// EnsureIndexes creates the file and project scoping indexes.
func (r *FeedbackRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "file_id", Value: 1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
	})
	return err
}
