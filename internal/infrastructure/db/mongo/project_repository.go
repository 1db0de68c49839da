package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

const projectsCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	ClientID    string             `bson:"client_id"`
	ClientName  string             `bson:"client_name"`
	ClientEmail string             `bson:"client_email"`
	FileIDs     []string           `bson:"file_ids"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d projectDoc) toDomain() *domain.Project {
	fileIDs := d.FileIDs
	if fileIDs == nil {
		fileIDs = []string{}
	}
	return &domain.Project{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Status:      domain.ProjectStatus(d.Status),
		ClientID:    d.ClientID,
		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		FileIDs:     fileIDs,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	doc := projectDoc{
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		ClientEmail: p.ClientEmail,
		FileIDs:     []string{},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.FileIDs = []string{}
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var d projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return d.toDomain(), nil
}

func (r *ProjectRepository) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	projects := []*domain.Project{}
	for cur.Next(ctx) {
		var d projectDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, d.toDomain())
	}
	return projects, cur.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	// FileIDs are mutated only through AttachFile/DetachFile.
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"status":      string(p.Status),
		"updated_at":  p.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// AttachFile pushes the file id atomically so concurrent uploads never
// clobber each other's entries.
func (r *ProjectRepository) AttachFile(ctx context.Context, projectID, fileID string) error {
	return r.mutateFileList(ctx, projectID, bson.M{
		"$push": bson.M{"file_ids": fileID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

// DetachFile pulls the file id atomically.
func (r *ProjectRepository) DetachFile(ctx context.Context, projectID, fileID string) error {
	return r.mutateFileList(ctx, projectID, bson.M{
		"$pull": bson.M{"file_ids": fileID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *ProjectRepository) mutateFileList(ctx context.Context, projectID string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update project file list: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the client scoping index.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "updated_at", Value: -1}}},
	})
	return err
}
