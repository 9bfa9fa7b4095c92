package models

import "time"

// Submission is one completed listening session. Rows are immutable after
// creation; the only mutations the API performs are insert and bulk delete.
type Submission struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SubmissionID string `gorm:"size:255;not null" json:"submissionId"`
	// Seeds come from the frontend RNG and can be anything up to 2^32-1,
	// so the column must be bigint rather than a 32-bit integer.
	Seed            int64     `gorm:"not null" json:"seed"`
	TimestampStart  string    `gorm:"size:64;not null" json:"timestampStart"`
	TimestampEnd    string    `gorm:"size:64;not null" json:"timestampEnd"`
	DurationSeconds int       `gorm:"not null" json:"durationSeconds"`
	AnswersJSON     string    `gorm:"type:text;not null" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Answer is the wire shape of a single pairwise comparison as the frontend
// reports it. Stored submissions keep the original JSON verbatim, so this
// type is only used when building synthetic sessions.
type Answer struct {
	Comparison int    `json:"comparison"`
	PairID     string `json:"pairId"`
	Audio1     string `json:"audio1"`
	Audio2     string `json:"audio2"`
	Answer     int    `json:"answer"`
}

const (
	AnswerPreferFirst  = 0
	AnswerPreferSecond = 1
	AnswerNoPreference = 2
)
