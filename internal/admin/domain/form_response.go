package domain

import "time"

// FormAnswer value is a string, a list of strings or a number.
type FormAnswer struct {
	QuestionID string `json:"questionId"`
	Value      any    `json:"value"`
}

// SectionAnswers groups the answers given in one form section.
type SectionAnswers struct {
	SectionID string       `json:"sectionId"`
	Answers   []FormAnswer `json:"answers"`
}

// FormResponse is a stored submission as shown to administrators.
type FormResponse struct {
	ID          string           `json:"id"`
	FormID      string           `json:"formId"`
	SubmittedAt string           `json:"submittedAt"`
	Sections    []SectionAnswers `json:"sections"`
	CreatedAt   time.Time        `json:"createdAt"`
	// Malformed is set when the stored document does not follow the envelope shape.
	Malformed   bool             `json:"malformed,omitempty"`
}
