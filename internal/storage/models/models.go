package models

import "time"

// Document is an uploaded file after text extraction. Records are
// append-only: a document is never updated or deleted once stored.
type Document struct {
	ID           string    `bson:"_id" json:"id"`
	Filename     string    `bson:"filename" json:"filename"`
	Content      string    `bson:"content,omitempty" json:"content,omitempty"`
	DocumentType string    `bson:"document_type" json:"document_type"`
	Language     string    `bson:"language" json:"language"`
	Tags         []string  `bson:"tags" json:"tags"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Translation is one entry of the append-only translation log.
type Translation struct {
	ID             string    `bson:"_id" json:"id"`
	OriginalText   string    `bson:"original_text" json:"original_text"`
	TranslatedText string    `bson:"translated_text" json:"translated_text"`
	SourceLanguage string    `bson:"source_language" json:"source_language"`
	TargetLanguage string    `bson:"target_language" json:"target_language"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// ChatMessage is one user/assistant exchange. Messages sharing a
// session id form a conversation; there is no session record beyond
// the shared identifier.
type ChatMessage struct {
	ID                string    `bson:"_id" json:"id"`
	SessionID         string    `bson:"session_id" json:"session_id"`
	UserMessage       string    `bson:"user_message" json:"user_message"`
	AssistantResponse string    `bson:"assistant_response" json:"assistant_response"`
	Context           string    `bson:"context,omitempty" json:"context,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// KnowledgeEntry is a seeded legal reference record. The collection is
// read-only through the API after the startup seed.
type KnowledgeEntry struct {
	ID        string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"`
	Content   string    `bson:"content" json:"content"`
	Tags      []string  `bson:"tags" json:"tags"`
	Language  string    `bson:"language" json:"language"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Stats holds the aggregate counts reported by the stats endpoint.
// It is computed on every call and never persisted.
type Stats struct {
	Documents     int64 `json:"documents"`
	Translations  int64 `json:"translations"`
	ChatSessions  int64 `json:"chat_sessions"`
	LegalArticles int64 `json:"legal_articles"`
}
