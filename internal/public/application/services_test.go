package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCourses struct {
	records []json.RawMessage
	err     error
}

func (s stubCourses) Raw(context.Context) ([]byte, error) { return []byte(`[]`), s.err }

func (s stubCourses) Records(context.Context) ([]json.RawMessage, error) { return s.records, s.err }

func records(raw ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(raw))
	for _, r := range raw {
		out = append(out, json.RawMessage(r))
	}
	return out
}

type recordingResponses struct {
	docs []map[string]any
	err  error
}

func (r *recordingResponses) Insert(_ context.Context, doc map[string]any) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.docs = append(r.docs, doc)
	return "65f000000000000000000001", nil
}

func TestValidEnvelope(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		valid   bool
	}{
		{"complete", map[string]any{"formId": "f1", "submittedAt": "2025-01-01T00:00:00Z", "sections": []any{}}, true},
		{"missing sections", map[string]any{"formId": "f1", "submittedAt": "2025-01-01T00:00:00Z"}, false},
		{"empty form id", map[string]any{"formId": "", "submittedAt": "x", "sections": []any{}}, false},
		{"zero timestamp", map[string]any{"formId": "f1", "submittedAt": float64(0), "sections": []any{}}, false},
		{"null sections", map[string]any{"formId": "f1", "submittedAt": "x", "sections": nil}, false},
		{"array payload", []any{"formId"}, false},
		{"null payload", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ValidEnvelope(tc.payload)
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestSubmit_AddsCreatedAt(t *testing.T) {
	repo := &recordingResponses{}
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("WET", 0))
	svc := NewFormCommandService(repo, func() time.Time { return fixed })

	payload := map[string]any{"formId": "f1", "submittedAt": "2025-01-01T00:00:00Z", "sections": []any{}}
	id, err := svc.Submit(context.Background(), payload)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.docs, 1)
	assert.Equal(t, "f1", repo.docs[0]["formId"])
	assert.Equal(t, fixed.UTC(), repo.docs[0]["createdAt"])
	_, mutated := payload["createdAt"]
	assert.False(t, mutated)
}

func TestSubmit_PropagatesRepositoryError(t *testing.T) {
	svc := NewFormCommandService(&recordingResponses{err: errors.New("boom")}, nil)

	_, err := svc.Submit(context.Background(), map[string]any{"formId": "f1"})
	assert.EqualError(t, err, "boom")
}

func TestCourseQueryService_Detail(t *testing.T) {
	svc := NewCourseQueryService(stubCourses{records: records(
		`{"slug":7,"nome":"numeric slug"}`,
		`"not an object"`,
		`{"slug":"ea","nome":"Engenharia de Aplicações","extra":{"k":1}}`,
	)})

	uc, err := svc.Detail(context.Background(), "ea")
	require.NoError(t, err)
	assert.JSONEq(t, `{"slug":"ea","nome":"Engenharia de Aplicações","extra":{"k":1}}`, string(uc))

	_, err = svc.Detail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUCNotFound)
}

func TestCourseQueryService_Summaries(t *testing.T) {
	svc := NewCourseQueryService(stubCourses{records: records(`{"nome":"A","sigla":"A","slug":"a"}`)})

	summaries, err := svc.Summaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	out, err := json.Marshal(summaries[0])
	require.NoError(t, err)
	assert.Equal(t, `{"nome":"A","sigla":"A"}`, string(out))

	_, err = NewCourseQueryService(stubCourses{err: errors.New("disk")}).Summaries(context.Background())
	assert.Error(t, err)
}
