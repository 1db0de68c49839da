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

const messagesCollection = "messages"

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type attachmentDoc struct {
	Filename    string `bson:"filename"`
	StoragePath string `bson:"storage_path"`
	Size        int64  `bson:"size"`
	MIMEType    string `bson:"mime_type"`
}

type messageDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Text        string             `bson:"text"`
	ProjectID   string             `bson:"project_id"`
	SenderID    string             `bson:"sender_id"`
	SenderName  string             `bson:"sender_name"`
	Attachments []attachmentDoc    `bson:"attachments"`
	IsRead      bool               `bson:"is_read"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d messageDoc) toDomain() *domain.Message {
	attachments := make([]domain.Attachment, len(d.Attachments))
	for i, a := range d.Attachments {
		attachments[i] = domain.Attachment{
			Filename:    a.Filename,
			StoragePath: a.StoragePath,
			Size:        a.Size,
			MIMEType:    a.MIMEType,
		}
	}
	return &domain.Message{
		ID:          d.ID.Hex(),
		Text:        d.Text,
		ProjectID:   d.ProjectID,
		SenderID:    d.SenderID,
		SenderName:  d.SenderName,
		Attachments: attachments,
		IsRead:      d.IsRead,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	attachments := make([]attachmentDoc, len(m.Attachments))
	for i, a := range m.Attachments {
		attachments[i] = attachmentDoc{
			Filename:    a.Filename,
			StoragePath: a.StoragePath,
			Size:        a.Size,
			MIMEType:    a.MIMEType,
		}
	}
	doc := messageDoc{
		Text:        m.Text,
		ProjectID:   m.ProjectID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		Attachments: attachments,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	var d messageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return d.toDomain(), nil
}

func (r *MessageRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Message, error) {
	cur, err := r.coll.Find(ctx, bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer cur.Close(ctx)

	messages := []*domain.Message{}
	for cur.Next(ctx) {
		var d messageDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, d.toDomain())
	}
	return messages, cur.Err()
}

// MarkRead flips the flag in a single atomic update; it never unsets it.
func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	return nil
}

// EnsureIndexes creates the chat-order index.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
