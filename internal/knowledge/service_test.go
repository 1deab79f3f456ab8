package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miriam-legal/backend/internal/storage/models"
)

type fakeStore struct {
	count    int64
	inserted []models.KnowledgeEntry

	gotQuery    string
	gotCategory string
	gotLanguage string
	gotLimit    int
}

func (f *fakeStore) CountKnowledgeEntries(_ context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeStore) InsertKnowledgeEntries(_ context.Context, entries []models.KnowledgeEntry) error {
	f.inserted = append(f.inserted, entries...)
	return nil
}

func (f *fakeStore) SearchKnowledge(_ context.Context, query, category, language string, limit int) ([]models.KnowledgeEntry, error) {
	f.gotQuery = query
	f.gotCategory = category
	f.gotLanguage = language
	f.gotLimit = limit
	return nil, nil
}

func TestSeedPopulatesEmptyCollection(t *testing.T) {
	store := &fakeStore{count: 0}
	svc := NewService(store)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Len(t, store.inserted, 6)
}

func TestSeedSkipsNonEmptyCollection(t *testing.T) {
	store := &fakeStore{count: 6}
	svc := NewService(store)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Empty(t, store.inserted)
}

func TestSeedEntriesAreBilingual(t *testing.T) {
	entries := SeedEntries()
	require.Len(t, entries, 6)

	languages := make(map[string]int)
	titles := make(map[string]bool)
	for _, entry := range entries {
		languages[entry.Language]++

		assert.NotEmpty(t, entry.ID)
		assert.NotEmpty(t, entry.Title)
		assert.NotEmpty(t, entry.Category)
		assert.NotEmpty(t, entry.Content)
		assert.NotEmpty(t, entry.Tags)
		assert.False(t, entry.CreatedAt.IsZero())

		assert.False(t, titles[entry.Title], "duplicate title %q", entry.Title)
		titles[entry.Title] = true
	}

	assert.GreaterOrEqual(t, len(languages), 2)
	assert.Contains(t, languages, "en")
	assert.Contains(t, languages, "tl")
}

func TestSeedEntriesIncludeCivilLaw(t *testing.T) {
	var categories []string
	for _, entry := range SeedEntries() {
		categories = append(categories, entry.Category)
	}
	assert.Contains(t, categories, "Civil Law")
}

func TestSearchAppliesFixedCap(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, err := svc.Search(context.Background(), "contract", "Civil Law", "en")
	require.NoError(t, err)

	assert.Equal(t, "contract", store.gotQuery)
	assert.Equal(t, "Civil Law", store.gotCategory)
	assert.Equal(t, "en", store.gotLanguage)
	assert.Equal(t, SearchLimit, store.gotLimit)
}
