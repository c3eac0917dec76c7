package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
)

func fullReport() *assessment.Report {
	rep := &assessment.Report{
		ProjectID:         "PRJ-PDF00001",
		SubmissionVersion: 1,
		GeneratedAt:       time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
	}
	rep.Report.Set(assessment.CategoryBusinessStrategy, json.RawMessage(
		`[{"objective":"cut delivery cost","analysis":"High feasibility given fleet telemetry.","suggestedUseCases":[{"useCase":"Route optimization","explanation":"Saves fuel on long hauls."}]}]`))
	rep.Report.Set(assessment.CategoryTeamSkills, json.RawMessage(
		`{"strengths":["Strong SQL skills"],"gaps":["No MLOps experience"],"recommendations":["Hire an ML engineer"]}`))
	rep.Report.Set(assessment.CategoryTechStack, json.RawMessage(
		`{"analysis":"Modern stack, batch-oriented data flow.","bottlenecks":["Nightly ETL window"],"recommendations":["Adopt streaming ingestion"]}`))
	rep.Report.Set(assessment.CategoryDataGovernance, json.RawMessage(
		`{"dataSuitability":"Telemetry data is well suited for modelling.","identifiedRisks":[{"category":"Privacy","risks":["Driver location is PII"]}],"governanceRecommendations":["Document retention policy"]}`))
	return rep
}

func TestRenderFullReport(t *testing.T) {
	out, err := NewPDFRenderer().Render(fullReport())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderOmitsMissingCategory(t *testing.T) {
	rep := fullReport()
	rep.Report.Set(assessment.CategoryTechStack, nil)

	out, err := NewPDFRenderer().Render(rep)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderEmptyPayload(t *testing.T) {
	rep := &assessment.Report{
		ProjectID:   "PRJ-PDF00002",
		GeneratedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	out, err := NewPDFRenderer().Render(rep)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
