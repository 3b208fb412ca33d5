package mongo

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormResponseDocument is the stored shape of a submission. Submissions are
// only checked for truthy formId, submittedAt and sections, so every field is
// decoded loosely and interpreted by mapFormResponseDocument.
type FormResponseDocument struct {
	ID          any `bson:"_id"`
	FormID      any `bson:"formId"`
	SubmittedAt any `bson:"submittedAt"`
	Sections    any `bson:"sections"`
	CreatedAt   any `bson:"createdAt"`
}

// displayString renders a scalar BSON value the way an admin would expect to read it.
func displayString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case primitive.ObjectID:
		return value.Hex()
	case primitive.DateTime:
		return value.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return value.UTC().Format(time.RFC3339Nano)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}

func asTime(v any) (time.Time, bool) {
	switch value := v.(type) {
	case primitive.DateTime:
		return value.Time().UTC(), true
	case time.Time:
		return value.UTC(), true
	}
	return time.Time{}, false
}

func asMap(v any) (map[string]any, bool) {
	switch value := v.(type) {
	case bson.M:
		return value, true
	case map[string]any:
		return value, true
	case bson.D:
		out := make(map[string]any, len(value))
		for _, e := range value {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

func asSlice(v any) ([]any, bool) {
	switch value := v.(type) {
	case bson.A:
		return value, true
	case []any:
		return value, true
	}
	return nil, false
}

// plainValue converts decoded BSON containers into JSON-friendly maps and slices.
func plainValue(v any) any {
	if m, ok := asMap(v); ok {
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = plainValue(item)
		}
		return out
	}
	if items, ok := asSlice(v); ok {
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, plainValue(item))
		}
		return out
	}
	switch value := v.(type) {
	case primitive.ObjectID, primitive.DateTime:
		return displayString(value)
	case int32:
		return int64(value)
	}
	return v
}
