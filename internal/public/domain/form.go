package domain

// QuestionType enumerates the renderable question widgets.
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionTextarea       QuestionType = "textarea"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionDropdown       QuestionType = "dropdown"
	QuestionScale          QuestionType = "scale"
	QuestionDate           QuestionType = "date"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionTextarea, QuestionMultipleChoice, QuestionDropdown, QuestionScale, QuestionDate:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry an options list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionMultipleChoice || t == QuestionDropdown
}

type FormOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type FormQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Required      bool         `json:"required"`
	Options       []FormOption `json:"options,omitempty"`
	ScaleMin      *int         `json:"scaleMin,omitempty"`
	ScaleMax      *int         `json:"scaleMax,omitempty"`
	ScaleMinLabel string       `json:"scaleMinLabel,omitempty"`
	ScaleMaxLabel string       `json:"scaleMaxLabel,omitempty"`
}

type FormSection struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Questions   []FormQuestion `json:"questions"`
}

// FormSchema describes a dynamically rendered survey.
type FormSchema struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Sections    []FormSection `json:"sections"`
}

// FormAnswer value is a string, a list of strings or a number.
type FormAnswer struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

type SectionAnswers struct {
	SectionID string       `json:"sectionId"`
	Answers   []FormAnswer `json:"answers"`
}
