package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"submissionId": "s1",
	"seed": 4294967295,
	"timestampStart": "2024-01-01T00:00:00Z",
	"timestampEnd": "2024-01-01T00:10:00Z",
	"durationSeconds": 600,
	"answers": [{"comparison":1,"audio1":"a.wav","audio2":"b.wav","answer":1}]
}`

func TestParseSubmissionValid(t *testing.T) {
	sub, err := ParseSubmission([]byte(validPayload))
	require.NoError(t, err)

	assert.Equal(t, "s1", sub.SubmissionID)
	assert.Equal(t, int64(4294967295), sub.Seed)
	assert.Equal(t, "2024-01-01T00:00:00Z", sub.TimestampStart)
	assert.Equal(t, "2024-01-01T00:10:00Z", sub.TimestampEnd)
	assert.Equal(t, 600, sub.DurationSeconds)
	assert.JSONEq(t, `[{"comparison":1,"audio1":"a.wav","audio2":"b.wav","answer":1}]`, sub.AnswersJSON)
}

func TestParseSubmissionMalformed(t *testing.T) {
	for _, body := range []string{"", "not json", "null", "[1,2,3]", `"str"`} {
		_, err := ParseSubmission([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedPayload, "body %q", body)
	}
}

func TestParseSubmissionMissingFields(t *testing.T) {
	for field, body := range payloadsMissingOneField {
		_, err := ParseSubmission([]byte(body))
		require.ErrorIs(t, err, ErrMissingField, "field %s", field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestParseSubmissionAnswersShape(t *testing.T) {
	for _, answers := range []string{`"nope"`, `123`, `{"a":1}`, `null`} {
		body := fmt.Sprintf(`{
			"submissionId": "s1",
			"seed": 1,
			"timestampStart": "a",
			"timestampEnd": "b",
			"durationSeconds": 1,
			"answers": %s
		}`, answers)

		_, err := ParseSubmission([]byte(body))
		assert.ErrorIs(t, err, ErrInvalidShape, "answers %s", answers)
	}
}

func TestParseSubmissionCoercion(t *testing.T) {
	tests := []struct {
		name     string
		seed     string
		duration string
		wantSeed int64
		wantDur  int
		wantErr  bool
	}{
		{name: "numeric strings", seed: `"123"`, duration: `"600"`, wantSeed: 123, wantDur: 600},
		{name: "integral float", seed: `42.0`, duration: `60`, wantSeed: 42, wantDur: 60},
		{name: "max seed", seed: `4294967295`, duration: `1`, wantSeed: 4294967295, wantDur: 1},
		{name: "fractional seed", seed: `12.5`, duration: `1`, wantErr: true},
		{name: "boolean seed", seed: `true`, duration: `1`, wantErr: true},
		{name: "non-numeric string", seed: `"abc"`, duration: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{
				"submissionId": "s1",
				"seed": %s,
				"timestampStart": "a",
				"timestampEnd": "b",
				"durationSeconds": %s,
				"answers": []
			}`, tt.seed, tt.duration)

			sub, err := ParseSubmission([]byte(body))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeed, sub.Seed)
			assert.Equal(t, tt.wantDur, sub.DurationSeconds)
		})
	}
}

func TestParseSubmissionTimestampCoercion(t *testing.T) {
	body := `{
		"submissionId": 7,
		"seed": 1,
		"timestampStart": 1704067200,
		"timestampEnd": "2024-01-01T00:10:00Z",
		"durationSeconds": 1,
		"answers": []
	}`

	sub, err := ParseSubmission([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "7", sub.SubmissionID)
	assert.Equal(t, "1704067200", sub.TimestampStart)
	assert.Equal(t, "2024-01-01T00:10:00Z", sub.TimestampEnd)
}

func TestParseSubmissionPreservesAnswerElements(t *testing.T) {
	body := `{
		"submissionId": "s1",
		"seed": 1,
		"timestampStart": "a",
		"timestampEnd": "b",
		"durationSeconds": 1,
		"answers": [{"comparison":2,"extra":"kept"}, "loose string", 42, {"comparison":1}]
	}`

	sub, err := ParseSubmission([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, `[{"comparison":2,"extra":"kept"},"loose string",42,{"comparison":1}]`, sub.AnswersJSON)
}

// Each entry is a payload with exactly one required field absent.
var payloadsMissingOneField = map[string]string{
	"submissionId":    `{"seed":1,"timestampStart":"a","timestampEnd":"b","durationSeconds":1,"answers":[]}`,
	"seed":            `{"submissionId":"s1","timestampStart":"a","timestampEnd":"b","durationSeconds":1,"answers":[]}`,
	"timestampStart":  `{"submissionId":"s1","seed":1,"timestampEnd":"b","durationSeconds":1,"answers":[]}`,
	"timestampEnd":    `{"submissionId":"s1","seed":1,"timestampStart":"a","durationSeconds":1,"answers":[]}`,
	"durationSeconds": `{"submissionId":"s1","seed":1,"timestampStart":"a","timestampEnd":"b","answers":[]}`,
	"answers":         `{"submissionId":"s1","seed":1,"timestampStart":"a","timestampEnd":"b","durationSeconds":1}`,
}
