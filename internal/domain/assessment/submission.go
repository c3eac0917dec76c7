package assessment

import "time"

// SubmissionItem is one answered question.
type SubmissionItem struct {
	QuestionID    string   `json:"questionId"`
	QuestionLabel string   `json:"questionLabel,omitempty"`
	Answers       []string `json:"answers"`
}

// Submission holds the complete questionnaire answers for one project.
// At most one submission exists per project; every submit replaces the
// whole item list and bumps Version.
type Submission struct {
	ProjectID   string           `json:"projectId"`
	Items       []SubmissionItem `json:"submission"`
	Version     int64            `json:"version"`
	SubmittedAt time.Time        `json:"submittedAt"`
}

// AnswersFor returns the answers for a question id, or an empty list
// when the question was never answered.
func (s *Submission) AnswersFor(questionID string) []string {
	for _, item := range s.Items {
		if item.QuestionID == questionID {
			return item.Answers
		}
	}
	return []string{}
}
