package services

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Rokuonji/soundcompare/internal/models"

	"gorm.io/gorm"
)

const (
	// DefaultGenerateCount is used when the admin request omits count.
	DefaultGenerateCount = 5

	comparisonsPerSubmission = 15
)

// GeneratorService builds synthetic submissions for testing the admin
// tooling against realistic data. The random source is injected so test
// harnesses can make generation deterministic.
type GeneratorService struct {
	db  *gorm.DB
	rng *rand.Rand
}

func NewGeneratorService(db *gorm.DB, rng *rand.Rand) *GeneratorService {
	return &GeneratorService{db: db, rng: rng}
}

// Generate inserts count synthetic submissions in a single transaction, so a
// concurrent listing never observes a partial batch.
func (s *GeneratorService) Generate(count int) error {
	total := comparisonsPerSubmission
	if total > len(models.AudioPairCatalog) {
		total = len(models.AudioPairCatalog)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for i := 0; i < count; i++ {
			start := now
			duration := 60 + s.rng.Intn(541) // uniform [60, 600]
			end := start.Add(time.Duration(duration) * time.Second)

			answers := make([]models.Answer, 0, total)
			for idx, pair := range s.samplePairs(total) {
				answers = append(answers, models.Answer{
					Comparison: idx + 1, // order within this synthetic session
					PairID:     pair.PairID,
					Audio1:     pair.Audio1,
					Audio2:     pair.Audio2,
					Answer:     s.rng.Intn(3),
				})
			}
			encoded, err := json.Marshal(answers)
			if err != nil {
				return err
			}

			sub := models.Submission{
				SubmissionID:    fmt.Sprintf("test-%d-%d", i+1, start.Unix()),
				Seed:            1 + s.rng.Int63n(math.MaxUint32), // uniform [1, 2^32-1]
				TimestampStart:  start.Format(time.RFC3339),
				TimestampEnd:    end.Format(time.RFC3339),
				DurationSeconds: duration,
				AnswersJSON:     string(encoded),
			}
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// samplePairs draws n catalog entries without replacement, already shuffled
// into the presentation order for one session.
func (s *GeneratorService) samplePairs(n int) []models.AudioPair {
	pairs := make([]models.AudioPair, len(models.AudioPairCatalog))
	copy(pairs, models.AudioPairCatalog)
	s.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
	return pairs[:n]
}
