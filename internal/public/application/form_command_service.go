package application

import (
	"context"
	"time"
)

// Required top-level keys of a form response envelope.
const (
	FieldFormID      = "formId"
	FieldSubmittedAt = "submittedAt"
	FieldSections    = "sections"
	FieldCreatedAt   = "createdAt"
)

// ValidEnvelope reports whether payload is an object carrying a truthy formId,
// submittedAt and sections. Answers are not checked against any schema; an
// empty sections list is accepted.
func ValidEnvelope(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, key := range []string{FieldFormID, FieldSubmittedAt, FieldSections} {
		if !truthy(obj[key]) {
			return obj, false
		}
	}
	return obj, true
}

func truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	default:
		return true
	}
}

// NewFormCommandService creates a FormCommandService. now may be nil.
func NewFormCommandService(repo FormResponseRepository, now func() time.Time) FormCommandService {
	if now == nil {
		now = time.Now
	}
	return &formCommandService{repo: repo, now: now}
}

type formCommandService struct {
	repo FormResponseRepository
	now  func() time.Time
}

// Submit stores payload plus a server-assigned createdAt and returns the new id.
// No deduplication is attempted.
func (s *formCommandService) Submit(ctx context.Context, payload map[string]any) (string, error) {
	doc := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		doc[k] = v
	}
	doc[FieldCreatedAt] = s.now().UTC()
	return s.repo.Insert(ctx, doc)
}
