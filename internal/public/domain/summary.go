package domain

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// SummaryKeys are the record keys kept by the calendar projection, in output order.
var SummaryKeys = []string{"nome", "perfil", "sigla", "avaliacoes"}

// SummaryField is one projected key with its value exactly as stored.
type SummaryField struct {
	Key   string
	Value json.RawMessage
}

// Summary is the calendar projection of a raw UC record. Keys absent from the
// record stay absent; present values are copied untouched.
type Summary []SummaryField

// MarshalJSON writes the fields as an object in SummaryKeys order.
func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ProjectSummary keeps only SummaryKeys from record. Records that are not JSON
// objects (numbers, strings, arrays) have none of the keys and project to {}.
// A null record is an error.
func ProjectSummary(record json.RawMessage) (Summary, error) {
	trimmed := bytes.TrimSpace(record)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.New("uc record is null")
	}
	out := Summary{}
	if trimmed[0] != '{' {
		return out, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, errors.Wrap(err, "decode uc record")
	}
	for _, key := range SummaryKeys {
		if value, ok := fields[key]; ok {
			out = append(out, SummaryField{Key: key, Value: value})
		}
	}
	return out, nil
}

// ProjectSummaries projects records one for one, keeping order.
func ProjectSummaries(records []json.RawMessage) ([]Summary, error) {
	out := make([]Summary, 0, len(records))
	for i, record := range records {
		summary, err := ProjectSummary(record)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		out = append(out, summary)
	}
	return out, nil
}

// RecordSlug returns the record's slug when it is an object with a string slug.
func RecordSlug(record json.RawMessage) (string, bool) {
	var head struct {
		Slug *string `json:"slug"`
	}
	trimmed := bytes.TrimSpace(record)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", false
	}
	if err := json.Unmarshal(trimmed, &head); err != nil || head.Slug == nil {
		return "", false
	}
	return *head.Slug, true
}
