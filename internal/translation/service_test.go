package translation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miriam-legal/backend/internal/storage/models"
)

type fakeStore struct {
	inserted []models.Translation
	listed   []models.Translation
	gotLimit int
}

func (f *fakeStore) InsertTranslation(_ context.Context, t *models.Translation) error {
	f.inserted = append(f.inserted, *t)
	return nil
}

func (f *fakeStore) ListTranslations(_ context.Context, limit int) ([]models.Translation, error) {
	f.gotLimit = limit
	return f.listed, nil
}

type stubDetector struct {
	code string
}

func (s stubDetector) Detect(string) string { return s.code }

func TestFormatPlaceholder(t *testing.T) {
	got := FormatPlaceholder("en", "tl", "This is a legal contract")
	assert.Equal(t, "[Translation from en to tl]: This is a legal contract", got)
}

func TestTranslateAutoResolvesSource(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, stubDetector{code: "en"})

	result, err := svc.Translate(context.Background(), "This is a legal contract", SourceAuto, "tl")
	require.NoError(t, err)

	assert.Equal(t, "This is a legal contract", result.OriginalText)
	assert.Equal(t, "en", result.SourceLanguage)
	assert.Equal(t, "tl", result.TargetLanguage)
	assert.Equal(t, "en", result.DetectedLanguage)
	assert.Contains(t, result.TranslatedText, "en")
	assert.Contains(t, result.TranslatedText, "tl")
	assert.Contains(t, result.TranslatedText, "This is a legal contract")

	require.Len(t, store.inserted, 1)
	record := store.inserted[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "en", record.SourceLanguage)
	assert.Equal(t, result.TranslatedText, record.TranslatedText)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestTranslateExplicitSourceSkipsDetection(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, stubDetector{code: "should-not-be-used"})

	result, err := svc.Translate(context.Background(), "Kamusta po kayo", "tl", "en")
	require.NoError(t, err)

	assert.Equal(t, "tl", result.SourceLanguage)
	assert.Empty(t, result.DetectedLanguage)
}

func TestHistoryDefaultLimit(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, stubDetector{})

	_, err := svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryLimit, store.gotLimit)

	_, err = svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, store.gotLimit)
}
