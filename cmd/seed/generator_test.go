package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	publicapp "github.com/infoloom/infoloom/api/internal/public/application"
	"github.com/infoloom/infoloom/api/internal/public/domain"
)

func TestGenerateResponses_ProducesValidEnvelopes(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	payloads := generateResponses(rand.New(rand.NewSource(1)), sampleSchema, 10, start)
	require.Len(t, payloads, 10)

	for i, payload := range payloads {
		_, ok := publicapp.ValidEnvelope(payload)
		assert.True(t, ok, "payload %d", i)
		assert.Equal(t, sampleSchema.ID, payload["formId"])
		assert.Equal(t, start.Add(time.Duration(i)*time.Hour).Format(time.RFC3339), payload["submittedAt"])
		assert.Len(t, payload["sections"], len(sampleSchema.Sections))
	}
}

func TestGenerateResponses_Deterministic(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	a := generateResponses(rand.New(rand.NewSource(42)), sampleSchema, 5, start)
	b := generateResponses(rand.New(rand.NewSource(42)), sampleSchema, 5, start)
	assert.Equal(t, a, b)
}

func TestAnswerFor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	scale := domain.FormQuestion{ID: "s", Type: domain.QuestionScale, Required: true, ScaleMin: intPtr(2), ScaleMax: intPtr(3)}
	for i := 0; i < 20; i++ {
		v, ok := answerFor(rng, scale, at)
		require.True(t, ok)
		assert.Contains(t, []float64{2, 3}, v)
	}

	_, ok := answerFor(rng, domain.FormQuestion{ID: "x", Type: "slider", Required: true}, at)
	assert.False(t, ok)

	_, ok = answerFor(rng, domain.FormQuestion{ID: "d", Type: domain.QuestionDropdown, Required: true}, at)
	assert.False(t, ok)

	v, ok := answerFor(rng, domain.FormQuestion{ID: "m", Type: domain.QuestionMultipleChoice, Required: true, Options: []domain.FormOption{{Value: "a"}}}, at)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, v)
}
