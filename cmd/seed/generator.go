package main

import (
	"math/rand"
	"time"

	"github.com/infoloom/infoloom/api/internal/public/domain"
)

func intPtr(v int) *int { return &v }

var sampleSchema = domain.FormSchema{
	ID:    "feedback-ucs-2025",
	Title: "Feedback sobre as UCs",
	Sections: []domain.FormSection{
		{
			ID:    "geral",
			Title: "Geral",
			Questions: []domain.FormQuestion{
				{ID: "curso", Type: domain.QuestionDropdown, Question: "Curso", Required: true, Options: []domain.FormOption{
					{ID: "lei", Label: "LEI", Value: "lei"},
					{ID: "meic", Label: "MEIC", Value: "meic"},
				}},
				{ID: "satisfacao", Type: domain.QuestionScale, Question: "Satisfação geral", Required: true, ScaleMin: intPtr(1), ScaleMax: intPtr(5)},
			},
		},
		{
			ID:    "detalhes",
			Title: "Detalhes",
			Questions: []domain.FormQuestion{
				{ID: "funcionalidades", Type: domain.QuestionMultipleChoice, Question: "O que usas mais?", Options: []domain.FormOption{
					{ID: "datas", Label: "Datas", Value: "datas"},
					{ID: "chat", Label: "Chat", Value: "chat"},
					{ID: "favoritos", Label: "Favoritos", Value: "favoritos"},
				}},
				{ID: "data-exame", Type: domain.QuestionDate, Question: "Próximo exame"},
				{ID: "comentarios", Type: domain.QuestionTextarea, Question: "Comentários"},
			},
		},
	},
}

var sampleComments = []string{
	"Muito útil para planear as avaliações.",
	"Faltam algumas datas de exame.",
	"O chat ajudou a perceber a matéria.",
}

// generateResponses builds count submission envelopes for schema, spaced one hour apart from start.
func generateResponses(rng *rand.Rand, schema domain.FormSchema, count int, start time.Time) []map[string]any {
	payloads := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		submittedAt := start.Add(time.Duration(i) * time.Hour).UTC()
		sections := make([]any, 0, len(schema.Sections))
		for _, section := range schema.Sections {
			answers := make([]any, 0, len(section.Questions))
			for _, question := range section.Questions {
				value, ok := answerFor(rng, question, submittedAt)
				if !ok {
					continue
				}
				answers = append(answers, map[string]any{"questionId": question.ID, "value": value})
			}
			sections = append(sections, map[string]any{"sectionId": section.ID, "answers": answers})
		}
		payloads = append(payloads, map[string]any{
			"formId":      schema.ID,
			"submittedAt": submittedAt.Format(time.RFC3339),
			"sections":    sections,
		})
	}
	return payloads
}

// answerFor picks a value of the right shape for question. Optional questions are skipped now and then.
func answerFor(rng *rand.Rand, question domain.FormQuestion, at time.Time) (any, bool) {
	if !question.Type.Valid() {
		return nil, false
	}
	if !question.Required && rng.Intn(4) == 0 {
		return nil, false
	}
	if question.Type.HasOptions() && len(question.Options) == 0 {
		return nil, false
	}

	switch question.Type {
	case domain.QuestionDropdown:
		return question.Options[rng.Intn(len(question.Options))].Value, true
	case domain.QuestionMultipleChoice:
		picked := make([]string, 0, len(question.Options))
		for _, option := range question.Options {
			if rng.Intn(2) == 0 {
				picked = append(picked, option.Value)
			}
		}
		if len(picked) == 0 {
			picked = append(picked, question.Options[0].Value)
		}
		return picked, true
	case domain.QuestionScale:
		low, high := 1, 5
		if question.ScaleMin != nil {
			low = *question.ScaleMin
		}
		if question.ScaleMax != nil {
			high = *question.ScaleMax
		}
		if high < low {
			high = low
		}
		return float64(low + rng.Intn(high-low+1)), true
	case domain.QuestionDate:
		return at.AddDate(0, 0, 7+rng.Intn(60)).Format("2006-01-02"), true
	default:
		return sampleComments[rng.Intn(len(sampleComments))], true
	}
}
