package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/metrics"
	"github.com/miriam-legal/backend/internal/storage/models"
	"github.com/miriam-legal/backend/pkg/logger"
)

// ErrInvalidContent marks payloads the service cannot extract text
// from: malformed PDFs and non-UTF-8 text files. Handlers map it to a
// client error.
var ErrInvalidContent = errors.New("invalid document content")

const (
	TypePDF  = "pdf"
	TypeText = "text"

	DefaultListLimit = 20
)

type Store interface {
	InsertDocument(ctx context.Context, doc *models.Document) error
	ListDocuments(ctx context.Context, limit int) ([]models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
}

type LanguageDetector interface {
	Detect(text string) string
}

type Service struct {
	store    Store
	detector LanguageDetector
}

func NewService(store Store, detector LanguageDetector) *Service {
	return &Service{
		store:    store,
		detector: detector,
	}
}

// Upload extracts text from the payload, detects its language, and
// persists a new document record with empty tags.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (*models.Document, error) {
	content, docType, err := ExtractText(filename, data)
	if err != nil {
		return nil, err
	}

	language := s.detector.Detect(content)

	doc := &models.Document{
		ID:           uuid.New().String(),
		Filename:     filename,
		Content:      content,
		DocumentType: docType,
		Language:     language,
		Tags:         []string{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.InsertDocument(ctx, doc); err != nil {
		return nil, err
	}

	metrics.DocumentsUploaded.WithLabelValues(docType).Inc()

	logger.Info("Document uploaded",
		zap.String("doc_id", doc.ID),
		zap.String("filename", filename),
		zap.String("document_type", docType),
		zap.String("language", language),
	)

	return doc, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]models.Document, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.store.ListDocuments(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.store.GetDocument(ctx, id)
}

// ExtractText decodes the payload by filename: PDF files are extracted
// page by page in page order, everything else must be valid UTF-8 text.
func ExtractText(filename string, data []byte) (content, docType string, err error) {
	if strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		text, err := extractPDFText(data)
		if err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		return text, TypePDF, nil
	}

	if !utf8.Valid(data) {
		return "", "", fmt.Errorf("%w: file is not valid UTF-8 text", ErrInvalidContent)
	}
	return string(data), TypeText, nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		builder.WriteString(pageText)
	}

	return builder.String(), nil
}
