package dataset

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// FileRepository serves the UC dataset from a JSON file. The file is re-read on
// every call so edits are visible without a restart.
type FileRepository struct {
	path string
}

// NewFileRepository binds the repository to the dataset at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Raw returns the file contents once they are known to be a JSON array.
func (r *FileRepository) Raw(_ context.Context) ([]byte, error) {
	data, _, err := r.read()
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Records returns each array element undecoded, in file order.
func (r *FileRepository) Records(_ context.Context) ([]json.RawMessage, error) {
	_, records, err := r.read()
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *FileRepository) read() ([]byte, []json.RawMessage, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read dataset %s", r.path)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, errors.Wrapf(err, "parse dataset %s", r.path)
	}
	if records == nil {
		return nil, nil, errors.Errorf("dataset %s is null, want an array", r.path)
	}
	return data, records, nil
}
