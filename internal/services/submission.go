package services

import (
	"encoding/json"
	"time"

	"github.com/Rokuonji/soundcompare/internal/models"

	"gorm.io/gorm"
)

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// SubmissionView is the admin-facing shape of a stored submission, with the
// answers blob decoded back into a JSON array.
type SubmissionView struct {
	ID              uint            `json:"id"`
	SubmissionID    string          `json:"submissionId"`
	Seed            int64           `json:"seed"`
	TimestampStart  string          `json:"timestampStart"`
	TimestampEnd    string          `json:"timestampEnd"`
	DurationSeconds int             `json:"durationSeconds"`
	CreatedAt       time.Time       `json:"createdAt"`
	Answers         json.RawMessage `json:"answers"`
}

func (s *SubmissionService) Create(sub *models.Submission) error {
	return s.db.Create(sub).Error
}

func (s *SubmissionService) ListAll() ([]models.Submission, error) {
	var subs []models.Submission
	if err := s.db.Order("id ASC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubmissionService) ClearAll() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Submission{}).Error
}

// View converts a row for the admin listing. A blob that no longer parses as
// a JSON array degrades to an empty one; the row itself is never dropped.
func (s *SubmissionService) View(sub models.Submission) SubmissionView {
	return SubmissionView{
		ID:              sub.ID,
		SubmissionID:    sub.SubmissionID,
		Seed:            sub.Seed,
		TimestampStart:  sub.TimestampStart,
		TimestampEnd:    sub.TimestampEnd,
		DurationSeconds: sub.DurationSeconds,
		CreatedAt:       sub.CreatedAt,
		Answers:         decodeAnswers(sub.AnswersJSON),
	}
}

func decodeAnswers(text string) json.RawMessage {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elements); err != nil || elements == nil {
		return json.RawMessage("[]")
	}
	return json.RawMessage(text)
}
