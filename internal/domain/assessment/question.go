package assessment

// Question is one generated questionnaire entry. Options are extracted
// from the project's document context by the model.
type Question struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Options    []string `json:"options"`
	AllowOther bool     `json:"allowOther"`
}
