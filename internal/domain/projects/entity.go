package projects

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID tipe untuk Project
type ProjectID string

// Aggregate Root: Project, unit kerja yang punya dokumen, submission, dan report
type Project struct {
	ID          ProjectID `json:"projectId"`
	Name        string    `json:"name"`
	ClientName  string    `json:"clientName"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewID generates a readable project identifier, e.g. PRJ-3F2A9C1B.
func NewID() ProjectID {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return ProjectID("PRJ-" + strings.ToUpper(raw[:8]))
}
