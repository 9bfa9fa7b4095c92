package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Rokuonji/soundcompare/internal/models"
)

var (
	ErrMalformedPayload = errors.New("invalid JSON payload")
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidShape     = errors.New("answers must be a list")
	ErrInvalidType      = errors.New("field is not an integer")
)

var requiredFields = []string{
	"submissionId",
	"seed",
	"timestampStart",
	"timestampEnd",
	"durationSeconds",
	"answers",
}

// ParseSubmission checks a raw request body against the submission contract
// and normalizes it into a storable record. The answers array is kept as its
// original JSON text, so element order and any per-element fields survive the
// round trip untouched. Per-element validation is deliberately not performed.
func ParseSubmission(body []byte) (*models.Submission, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return nil, ErrMalformedPayload
	}

	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(payload["answers"], &elements); err != nil {
		return nil, ErrInvalidShape
	}
	if elements == nil && !bytes.Equal(bytes.TrimSpace(payload["answers"]), []byte("[]")) {
		// JSON null decodes into a nil slice without an error.
		return nil, ErrInvalidShape
	}

	seed, err := coerceInt64(payload["seed"])
	if err != nil {
		return nil, fmt.Errorf("%w: seed", ErrInvalidType)
	}
	duration, err := coerceInt64(payload["durationSeconds"])
	if err != nil {
		return nil, fmt.Errorf("%w: durationSeconds", ErrInvalidType)
	}

	answers := new(bytes.Buffer)
	if err := json.Compact(answers, payload["answers"]); err != nil {
		return nil, ErrInvalidShape
	}

	return &models.Submission{
		SubmissionID:    coerceString(payload["submissionId"]),
		Seed:            seed,
		TimestampStart:  coerceString(payload["timestampStart"]),
		TimestampEnd:    coerceString(payload["timestampEnd"]),
		DurationSeconds: int(duration),
		AnswersJSON:     answers.String(),
	}, nil
}

// coerceInt64 accepts JSON numbers (including integral floats the frontend
// occasionally sends) and numeric strings.
func coerceInt64(raw json.RawMessage) (int64, error) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if n, err := num.Int64(); err == nil {
			return n, nil
		}
		if f, err := num.Float64(); err == nil && f == float64(int64(f)) {
			return int64(f), nil
		}
		return 0, ErrInvalidType
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, ErrInvalidType
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidType
	}
	return n, nil
}

// coerceString takes JSON strings verbatim and falls back to the value's
// compact JSON text for anything else.
func coerceString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
