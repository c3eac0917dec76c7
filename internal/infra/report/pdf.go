// Package report renders a persisted analysis report into a paginated PDF.
// The payload shape is model-dependent, so every access goes through the
// tolerant typed views; a missing category simply omits its section.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
)

// PDFRenderer implements assessment.ReportRenderer.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

type pdfDoc struct {
	*fpdf.Fpdf
	tr func(string) string
}

func (r *PDFRenderer) Render(rep *assessment.Report) ([]byte, error) {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(true, 18)
	doc := &pdfDoc{Fpdf: f, tr: f.UnicodeTranslatorFromDescriptor("")}
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, doc.tr("AI Readiness Assessment Report"), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	when := rep.UpdatedAt
	if when.IsZero() {
		when = rep.GeneratedAt
	}
	doc.CellFormat(0, 6, doc.tr(fmt.Sprintf("Project %s - generated %s", rep.ProjectID, when.Format("January 2, 2006"))), "", 1, "C", false, 0, "")
	doc.Ln(4)

	r.businessSection(doc, rep.Report)
	r.teamSection(doc, rep.Report)
	r.techSection(doc, rep.Report)
	r.governanceSection(doc, rep.Report)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) businessSection(doc *pdfDoc, p assessment.ReportPayload) {
	if len(p.BusinessStrategy) == 0 {
		return
	}
	doc.sectionTitle("Business Strategy & Suggested Use Cases")
	for _, item := range p.BusinessStrategyView() {
		objective := item.Objective
		if objective == "" {
			objective = "No Objective Provided"
		}
		doc.subHeading(objective)
		if item.Analysis != "" {
			doc.SetFont("Helvetica", "I", 10)
			doc.MultiCell(0, 5, doc.tr(item.Analysis), "", "L", false)
		}
		for _, uc := range item.SuggestedUseCases {
			doc.bullet(fmt.Sprintf("%s: %s", uc.UseCase, uc.Explanation))
		}
		doc.Ln(2)
	}
}

func (r *PDFRenderer) teamSection(doc *pdfDoc, p assessment.ReportPayload) {
	if len(p.TeamSkills) == 0 {
		return
	}
	v := p.TeamSkillsView()
	doc.sectionTitle("Team & Skills Assessment")
	doc.bulletList("Strengths", v.Strengths)
	doc.bulletList("Identified Gaps", v.Gaps)
	doc.bulletList("Recommendations", v.Recommendations)
}

func (r *PDFRenderer) techSection(doc *pdfDoc, p assessment.ReportPayload) {
	if len(p.TechStack) == 0 {
		return
	}
	v := p.TechStackView()
	doc.sectionTitle("Technology Stack Review")
	if v.Analysis != "" {
		doc.paragraph(v.Analysis)
	}
	doc.bulletList("Potential Bottlenecks", v.Bottlenecks)
	doc.bulletList("Recommendations", v.Recommendations)
}

func (r *PDFRenderer) governanceSection(doc *pdfDoc, p assessment.ReportPayload) {
	if len(p.DataGovernance) == 0 {
		return
	}
	v := p.DataGovernanceView()
	doc.sectionTitle("Data Readiness & Governance Analysis")
	if v.DataSuitability != "" {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(0, 6, doc.tr("Data Suitability"), "", 1, "L", false, 0, "")
		doc.paragraph(v.DataSuitability)
	}
	doc.subHeading("Identified Risks")
	for _, rc := range v.IdentifiedRisks {
		category := rc.Category
		if category == "" {
			category = "Uncategorized Risk"
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(0, 6, doc.tr(category), "", 1, "L", false, 0, "")
		for _, risk := range rc.Risks {
			doc.bullet(risk)
		}
	}
	doc.bulletList("Governance Recommendations", v.GovernanceRecommendations)
}

func (d *pdfDoc) sectionTitle(text string) {
	d.Ln(3)
	d.SetFont("Helvetica", "B", 14)
	d.CellFormat(0, 8, d.tr(text), "", 1, "L", false, 0, "")
	d.SetLineWidth(0.3)
	x, y := d.GetX(), d.GetY()
	d.Line(x, y, x+180, y)
	d.Ln(2)
}

func (d *pdfDoc) subHeading(text string) {
	d.SetFont("Helvetica", "B", 11)
	d.CellFormat(0, 7, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *pdfDoc) paragraph(text string) {
	d.SetFont("Helvetica", "", 10)
	d.MultiCell(0, 5, d.tr(text), "", "L", false)
}

func (d *pdfDoc) bullet(text string) {
	d.SetFont("Helvetica", "", 10)
	d.MultiCell(0, 5, d.tr("  - "+text), "", "L", false)
}

func (d *pdfDoc) bulletList(heading string, items []string) {
	d.subHeading(heading)
	for _, item := range items {
		d.bullet(item)
	}
}
