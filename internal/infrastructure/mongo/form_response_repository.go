package mongo

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/infoloom/infoloom/api/internal/admin/application"
	admindomain "github.com/infoloom/infoloom/api/internal/admin/domain"
)

// ClientProvider hands out a connected client; Connector is the production one.
type ClientProvider interface {
	Client(ctx context.Context) (*mongo.Client, error)
}

// FormResponseRepository writes and reads form submissions in a single collection.
type FormResponseRepository struct {
	clients    ClientProvider
	database   string
	collection string
}

// NewFormResponseRepository binds the repository to database.collection.
func NewFormResponseRepository(clients ClientProvider, database, collection string) *FormResponseRepository {
	return &FormResponseRepository{clients: clients, database: database, collection: collection}
}

func (r *FormResponseRepository) coll(ctx context.Context) (*mongo.Collection, error) {
	client, err := r.clients.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(r.database).Collection(r.collection), nil
}

// Insert stores doc as-is and returns the generated identifier.
func (r *FormResponseRepository) Insert(ctx context.Context, doc map[string]any) (string, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return "", err
	}
	result, err := coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", errors.Wrap(err, "insert form response")
	}
	return formatInsertedID(result.InsertedID), nil
}

// Find lists submissions newest first.
func (r *FormResponseRepository) Find(ctx context.Context, filter adminapp.FormResponseFilter) ([]admindomain.FormResponse, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	mongoFilter := bson.M{}
	if formID := strings.TrimSpace(filter.FormID); formID != "" {
		mongoFilter["formId"] = formID
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		findOpts.SetLimit(int64(filter.Limit))
	}

	cursor, err := coll.Find(ctx, mongoFilter, findOpts)
	if err != nil {
		return nil, errors.Wrap(err, "find form responses")
	}
	defer cursor.Close(ctx)

	items := make([]admindomain.FormResponse, 0)
	for cursor.Next(ctx) {
		var doc FormResponseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode form response")
		}
		items = append(items, mapFormResponseDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate form responses")
	}
	return items, nil
}

// EnsureIndexes creates the index backing the admin listing (formId, newest first).
func (r *FormResponseRepository) EnsureIndexes(ctx context.Context) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "formId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_form_response_form_createdAt"),
	})
	return errors.Wrap(err, "create form response index")
}

// Drop removes the whole collection.
func (r *FormResponseRepository) Drop(ctx context.Context) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	return errors.Wrap(coll.Drop(ctx), "drop form responses")
}

// mapFormResponseDocument keeps what matches the expected envelope and flags
// the rest as malformed instead of failing the listing.
func mapFormResponseDocument(doc FormResponseDocument) admindomain.FormResponse {
	resp := admindomain.FormResponse{
		ID:          displayString(doc.ID),
		FormID:      displayString(doc.FormID),
		SubmittedAt: displayString(doc.SubmittedAt),
		Sections:    make([]admindomain.SectionAnswers, 0),
	}
	if _, ok := doc.FormID.(string); !ok {
		resp.Malformed = true
	}
	if _, ok := doc.SubmittedAt.(string); !ok {
		resp.Malformed = true
	}
	if created, ok := asTime(doc.CreatedAt); ok {
		resp.CreatedAt = created
	}

	sections, ok := asSlice(doc.Sections)
	if !ok {
		resp.Malformed = true
		return resp
	}
	for _, rawSection := range sections {
		section, ok := asMap(rawSection)
		if !ok {
			resp.Malformed = true
			continue
		}
		out := admindomain.SectionAnswers{
			SectionID: displayString(section["sectionId"]),
			Answers:   make([]admindomain.FormAnswer, 0),
		}
		answers, ok := asSlice(section["answers"])
		if !ok {
			resp.Malformed = true
		}
		for _, rawAnswer := range answers {
			answer, ok := asMap(rawAnswer)
			if !ok {
				resp.Malformed = true
				continue
			}
			out.Answers = append(out.Answers, admindomain.FormAnswer{
				QuestionID: displayString(answer["questionId"]),
				Value:      plainValue(answer["value"]),
			})
		}
		resp.Sections = append(resp.Sections, out)
	}
	return resp
}

func formatInsertedID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
