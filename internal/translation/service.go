package translation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/metrics"
	"github.com/miriam-legal/backend/internal/storage/models"
	"github.com/miriam-legal/backend/pkg/logger"
)

// SourceAuto asks the service to resolve the source language via
// detection instead of trusting a caller-supplied code.
const SourceAuto = "auto"

const DefaultHistoryLimit = 20

type Store interface {
	InsertTranslation(ctx context.Context, t *models.Translation) error
	ListTranslations(ctx context.Context, limit int) ([]models.Translation, error)
}

type LanguageDetector interface {
	Detect(text string) string
}

// Result carries the translate response. DetectedLanguage is set only
// when the caller passed the auto sentinel.
type Result struct {
	OriginalText     string `json:"original_text"`
	TranslatedText   string `json:"translated_text"`
	SourceLanguage   string `json:"source_language"`
	TargetLanguage   string `json:"target_language"`
	DetectedLanguage string `json:"detected_language,omitempty"`
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

// Translate resolves the source language if requested, builds the
// placeholder translated text, and appends a record to the translation
// log. No real translation is performed; the placeholder contract is
// intentional and must not be upgraded silently.
func (s *Service) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (*Result, error) {
	resolved := sourceLanguage
	if resolved == SourceAuto {
		resolved = s.detector.Detect(text)
	}

	translated := FormatPlaceholder(resolved, targetLanguage, text)

	record := &models.Translation{
		ID:             uuid.New().String(),
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: resolved,
		TargetLanguage: targetLanguage,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.store.InsertTranslation(ctx, record); err != nil {
		return nil, err
	}

	metrics.TranslationsTotal.Inc()

	logger.Info("Translation recorded",
		zap.String("translation_id", record.ID),
		zap.String("source_language", resolved),
		zap.String("target_language", targetLanguage),
	)

	result := &Result{
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: resolved,
		TargetLanguage: targetLanguage,
	}
	if sourceLanguage == SourceAuto {
		result.DetectedLanguage = resolved
	}

	return result, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]models.Translation, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.store.ListTranslations(ctx, limit)
}

// FormatPlaceholder builds the deterministic stand-in for a real
// translation, embedding both language codes and the text verbatim.
func FormatPlaceholder(sourceLanguage, targetLanguage, text string) string {
	return fmt.Sprintf("[Translation from %s to %s]: %s", sourceLanguage, targetLanguage, text)
}
