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

const filesCollection = "files"

type FileRepository struct {
	coll *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{coll: db.Collection(filesCollection)}
}

type fileDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	OriginalName string             `bson:"original_name"`
	URL          string             `bson:"url"`
	StoragePath  string             `bson:"storage_path"`
	MIMEType     string             `bson:"mime_type"`
	Size         int64              `bson:"size"`
	ProjectID    string             `bson:"project_id"`
	UploadedBy   string             `bson:"uploaded_by"`
	UploadedAt   time.Time          `bson:"uploaded_at"`
}

func (d fileDoc) toDomain() *domain.File {
	return &domain.File{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		OriginalName: d.OriginalName,
		URL:          d.URL,
		StoragePath:  d.StoragePath,
		MIMEType:     d.MIMEType,
		Size:         d.Size,
		ProjectID:    d.ProjectID,
		UploadedBy:   d.UploadedBy,
		UploadedAt:   d.UploadedAt,
	}
}

func (r *FileRepository) Create(ctx context.Context, f *domain.File) (*domain.File, error) {
	doc := fileDoc{
		Name:         f.Name,
		OriginalName: f.OriginalName,
		URL:          f.URL,
		StoragePath:  f.StoragePath,
		MIMEType:     f.MIMEType,
		Size:         f.Size,
		ProjectID:    f.ProjectID,
		UploadedBy:   f.UploadedBy,
		UploadedAt:   f.UploadedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}

	created := *f
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*domain.File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFileNotFound
	}

	var d fileDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return d.toDomain(), nil
}

func (r *FileRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.File, error) {
	cur, err := r.coll.Find(ctx, bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer cur.Close(ctx)

	files := []*domain.File{}
	for cur.Next(ctx) {
		var d fileDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode file: %w", err)
		}
		files = append(files, d.toDomain())
	}
	return files, cur.Err()
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFileNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (r *FileRepository) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete files: %w", err)
	}
	return nil
}

// EnsureIndexes creates the project scoping index.
func (r *FileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}},
	})
	return err
}
