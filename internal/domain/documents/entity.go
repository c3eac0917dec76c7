package documents

import "time"

// Status enum
type Status string

const (
	StatusProcessing Status = "processing"
	StatusUploaded   Status = "uploaded"
)

// Aggregate Root: Document, satu record per file yang diupload.
// Context holds the extracted free-text summary used as grounding input
// for prompts; it is attached after upload and never mutated otherwise.
type Document struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	OriginalName string    `json:"originalName"`
	StorageName  string    `json:"storageName"`
	Size         int64     `json:"size"`
	Status       Status    `json:"status"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Context      string    `json:"context,omitempty"`
}
