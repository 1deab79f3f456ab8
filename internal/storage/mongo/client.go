package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/storage"
	"github.com/miriam-legal/backend/internal/storage/models"
	"github.com/miriam-legal/backend/pkg/logger"
)

const (
	collDocuments    = "documents"
	collTranslations = "translations"
	collChatHistory  = "chat_history"
	collKnowledge    = "legal_knowledge"
)

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewClient(ctx context.Context, uri, database string) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("MongoDB client initialized", zap.String("database", database))

	return &Client{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the service relies on. The unique
// title index on legal_knowledge is the guard against two concurrent
// startups both seeding the collection.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(collChatHistory).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create chat_history index: %w", err)
	}

	_, err = c.db.Collection(collKnowledge).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create legal_knowledge index: %w", err)
	}

	logger.Info("MongoDB indexes ensured")
	return nil
}

func (c *Client) InsertDocument(ctx context.Context, doc *models.Document) error {
	_, err := c.db.Collection(collDocuments).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	logger.Debug("Document inserted",
		zap.String("doc_id", doc.ID),
		zap.String("filename", doc.Filename),
	)
	return nil
}

// ListDocuments returns the newest documents first, omitting content.
func (c *Client) ListDocuments(ctx context.Context, limit int) ([]models.Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.D{{Key: "content", Value: 0}})

	cursor, err := c.db.Collection(collDocuments).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]models.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	return docs, nil
}

func (c *Client) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := c.db.Collection(collDocuments).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return &doc, nil
}

func (c *Client) InsertTranslation(ctx context.Context, t *models.Translation) error {
	_, err := c.db.Collection(collTranslations).InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to insert translation: %w", err)
	}

	return nil
}

func (c *Client) ListTranslations(ctx context.Context, limit int) ([]models.Translation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := c.db.Collection(collTranslations).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	translations := make([]models.Translation, 0)
	if err := cursor.All(ctx, &translations); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}

	return translations, nil
}

func (c *Client) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	_, err := c.db.Collection(collChatHistory).InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}

	logger.Debug("Chat message inserted",
		zap.String("session_id", msg.SessionID),
		zap.String("message_id", msg.ID),
	)
	return nil
}

// ListSessionMessages returns a session's messages in send order
// (ascending creation time). An unknown session yields an empty slice.
func (c *Client) ListSessionMessages(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := c.db.Collection(collChatHistory).Find(ctx, bson.D{{Key: "session_id", Value: sessionID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list session messages: %w", err)
	}

	messages := make([]models.ChatMessage, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}

	return messages, nil
}

func (c *Client) CountKnowledgeEntries(ctx context.Context) (int64, error) {
	count, err := c.db.Collection(collKnowledge).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count knowledge entries: %w", err)
	}
	return count, nil
}

// InsertKnowledgeEntries writes the seed batch. Duplicate-key errors
// from the unique title index mean another process seeded first and
// are reported as mongo bulk write errors for the caller to inspect.
func (c *Client) InsertKnowledgeEntries(ctx context.Context, entries []models.KnowledgeEntry) error {
	docs := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		docs = append(docs, entry)
	}

	_, err := c.db.Collection(collKnowledge).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.Info("Knowledge entries already present, skipping seed batch")
			return nil
		}
		return fmt.Errorf("failed to insert knowledge entries: %w", err)
	}

	return nil
}

// SearchKnowledge filters the knowledge collection. A free-text query
// matches case-insensitively against title, content, or tags; category
// and language are exact matches ANDed with the query.
func (c *Client) SearchKnowledge(ctx context.Context, query, category, language string, limit int) ([]models.KnowledgeEntry, error) {
	filter := bson.D{}

	if query != "" {
		regex := bson.D{{Key: "$regex", Value: query}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: regex}},
			bson.D{{Key: "content", Value: regex}},
			bson.D{{Key: "tags", Value: regex}},
		}})
	}
	if category != "" {
		filter = append(filter, bson.E{Key: "category", Value: category})
	}
	if language != "" {
		filter = append(filter, bson.E{Key: "language", Value: language})
	}

	opts := options.Find().SetLimit(int64(limit))

	cursor, err := c.db.Collection(collKnowledge).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge entries: %w", err)
	}

	entries := make([]models.KnowledgeEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge entries: %w", err)
	}

	return entries, nil
}

// CollectStats computes the aggregate counts fresh on every call.
func (c *Client) CollectStats(ctx context.Context) (*models.Stats, error) {
	docs, err := c.db.Collection(collDocuments).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	translations, err := c.db.Collection(collTranslations).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count translations: %w", err)
	}

	sessions, err := c.db.Collection(collChatHistory).Distinct(ctx, "session_id", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count chat sessions: %w", err)
	}

	laws, err := c.db.Collection(collKnowledge).CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to count knowledge entries: %w", err)
	}

	return &models.Stats{
		Documents:     docs,
		Translations:  translations,
		ChatSessions:  int64(len(sessions)),
		LegalArticles: laws,
	}, nil
}
