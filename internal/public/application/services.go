package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/infoloom/infoloom/api/internal/public/domain"
)

// ErrUCNotFound is returned when a slug does not match any UC in the dataset.
var ErrUCNotFound = errors.New("uc not found")

// CourseRepository reads the static UC dataset.
type CourseRepository interface {
	// Raw returns the dataset records exactly as stored, after checking they parse.
	Raw(ctx context.Context) ([]byte, error)
	// Records returns every array element undecoded, in file order.
	Records(ctx context.Context) ([]json.RawMessage, error)
}

// FormResponseRepository persists submitted form envelopes.
type FormResponseRepository interface {
	Insert(ctx context.Context, doc map[string]any) (string, error)
}

// CourseQueryService describes UC read use-cases.
type CourseQueryService interface {
	Raw(ctx context.Context) ([]byte, error)
	Summaries(ctx context.Context) ([]domain.Summary, error)
	Detail(ctx context.Context, slug string) (json.RawMessage, error)
}

// FormCommandService handles form submissions.
type FormCommandService interface {
	Submit(ctx context.Context, payload map[string]any) (string, error)
}
