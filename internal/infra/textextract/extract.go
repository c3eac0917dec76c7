// Package textextract turns uploaded files into plain text for LLM
// summarization. PDF and DOCX are supported; anything else yields an
// empty string so the caller can skip summarization.
package textextract

const (
	contentTypePDF  = "application/pdf"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extractor implements documents.TextExtractor.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(path, contentType string) (string, error) {
	switch contentType {
	case contentTypePDF:
		return extractPDF(path)
	case contentTypeDOCX:
		return extractDOCX(path)
	}
	return "", nil
}
