package knowledge

import (
	"time"

	"github.com/google/uuid"

	"github.com/miriam-legal/backend/internal/storage/models"
)

// SeedEntries returns the fixed bilingual reference set inserted on
// first startup. Entry identifiers are generated per call; titles are
// the stable keys the datastore enforces uniqueness on.
func SeedEntries() []models.KnowledgeEntry {
	now := time.Now().UTC()

	return []models.KnowledgeEntry{
		{
			ID:       uuid.New().String(),
			Title:    "Civil Code of the Philippines - Article 19",
			Category: "Civil Law",
			Content: "Every person must, in the exercise of his rights and in the performance " +
				"of his duties, act with justice, give everyone his due, and observe honesty " +
				"and good faith.",
			Tags:      []string{"civil law", "rights", "duties", "good faith"},
			Language:  "en",
			CreatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Title:    "Labor Code - Article 279",
			Category: "Labor Law",
			Content: "In cases of regular employment, the employer shall not terminate the " +
				"services of an employee except for a just cause or when authorized by law.",
			Tags:      []string{"labor", "employment", "termination", "just cause"},
			Language:  "en",
			CreatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Title:    "Republic Act 8353 - Anti-Rape Law",
			Category: "Criminal Law",
			Content: "Rape is committed by a man who shall have carnal knowledge of a woman " +
				"through force, threat, or intimidation.",
			Tags:      []string{"criminal law", "rape", "sexual crimes"},
			Language:  "en",
			CreatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Title:    "Family Code - Article 1",
			Category: "Family Law",
			Content: "Marriage is a special contract of permanent union between a man and a " +
				"woman entered into in accordance with law for the establishment of conjugal " +
				"and family life.",
			Tags:      []string{"family law", "marriage", "conjugal rights"},
			Language:  "en",
			CreatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Title:    "Data Privacy Act of 2012",
			Category: "Privacy Law",
			Content: "It is the policy of the State to protect the fundamental human right of " +
				"privacy while ensuring free flow of information to promote innovation and growth.",
			Tags:      []string{"privacy", "data protection", "personal information"},
			Language:  "en",
			CreatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Title:    "Batas Sibil ng Pilipinas - Artikulo 19",
			Category: "Batas Sibil",
			Content: "Ang bawat tao ay dapat, sa paggamit ng kanyang mga karapatan at sa " +
				"pagtupad ng kanyang mga tungkulin, kumilos nang may katarungan, bigyan ang " +
				"bawat isa ng kanyang karapatdapat, at sundin ang katapatan at mabuting " +
				"pananampalataya.",
			Tags:      []string{"batas sibil", "karapatan", "tungkulin", "mabuting pananampalataya"},
			Language:  "tl",
			CreatedAt: now,
		},
	}
}
