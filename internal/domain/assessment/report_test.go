package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPayloadSetGet(t *testing.T) {
	var p ReportPayload
	for _, c := range Categories() {
		assert.Nil(t, p.Get(c))
	}

	p.Set(CategoryTechStack, json.RawMessage(`{"analysis":"ok"}`))
	assert.JSONEq(t, `{"analysis":"ok"}`, string(p.Get(CategoryTechStack)))
	assert.Nil(t, p.Get(CategoryBusinessStrategy))
}

func TestReportPayloadMarshalOmitsEmptyCategories(t *testing.T) {
	var p ReportPayload
	p.Set(CategoryTeamSkills, json.RawMessage(`{"strengths":["SQL"]}`))

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Len(t, m, 1)
	assert.Contains(t, m, "teamSkillsAnalysis")
}

func TestBusinessStrategyView(t *testing.T) {
	var p ReportPayload
	assert.Nil(t, p.BusinessStrategyView())

	p.BusinessStrategy = json.RawMessage(`[{"objective":"cut cost","analysis":"feasible","suggestedUseCases":[{"useCase":"route optimization","explanation":"fuel savings"}]}]`)
	v := p.BusinessStrategyView()
	require.Len(t, v, 1)
	assert.Equal(t, "cut cost", v[0].Objective)
	require.Len(t, v[0].SuggestedUseCases, 1)
	assert.Equal(t, "route optimization", v[0].SuggestedUseCases[0].UseCase)

	// a non-array payload decodes to nil instead of failing
	p.BusinessStrategy = json.RawMessage(`{"objective":"cut cost"}`)
	assert.Nil(t, p.BusinessStrategyView())
}

func TestObjectViewsTolerateWrongShapes(t *testing.T) {
	var p ReportPayload
	p.TeamSkills = json.RawMessage(`["not","an","object"]`)
	p.TechStack = json.RawMessage(`{"analysis":"solid","bottlenecks":["batch ETL"]}`)
	p.DataGovernance = json.RawMessage(`{"identifiedRisks":[{"category":"PII","risks":["exposure"]}]}`)

	assert.Empty(t, p.TeamSkillsView().Strengths)

	ts := p.TechStackView()
	assert.Equal(t, "solid", ts.Analysis)
	assert.Equal(t, []string{"batch ETL"}, ts.Bottlenecks)

	dg := p.DataGovernanceView()
	require.Len(t, dg.IdentifiedRisks, 1)
	assert.Equal(t, "PII", dg.IdentifiedRisks[0].Category)
}
