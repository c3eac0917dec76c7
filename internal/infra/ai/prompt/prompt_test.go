package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
)

func TestQuestionIDs(t *testing.T) {
	assert.Equal(t, []string{QuestionBusinessObjectives, QuestionKPIs}, QuestionIDs(assessment.CategoryBusinessStrategy))
	assert.Equal(t, []string{QuestionStakeholders}, QuestionIDs(assessment.CategoryTeamSkills))
	assert.Equal(t, []string{QuestionTechStack}, QuestionIDs(assessment.CategoryTechStack))
	assert.Equal(t, []string{QuestionDatasets, QuestionGovernance}, QuestionIDs(assessment.CategoryDataGovernance))
}

func TestBuildInterpolatesContextAndAnswers(t *testing.T) {
	in := Inputs{
		DocumentContext: "We operate a fleet of 200 delivery trucks.",
		Answers: map[string][]string{
			QuestionBusinessObjectives: {"cut cost", "reduce idle time"},
			QuestionKPIs:               {"cost per mile"},
			QuestionStakeholders:       {"CTO", "Ops Lead"},
			QuestionTechStack:          {"PostgreSQL", "Kubernetes"},
			QuestionDatasets:           {"GPS traces"},
			QuestionGovernance:         {"GDPR policy"},
		},
	}

	for _, c := range assessment.Categories() {
		p := Build(c, in)
		assert.Contains(t, p, in.DocumentContext, "category %s must embed the document context", c)
		assert.Contains(t, p, "```json", "category %s must demand a fenced JSON reply", c)
		for _, id := range QuestionIDs(c) {
			for _, answer := range in.Answers[id] {
				assert.Contains(t, p, answer, "category %s must embed answers for %s", c, id)
			}
		}
	}
}

func TestBuildSerializesAnswersAsJSON(t *testing.T) {
	in := Inputs{Answers: map[string][]string{QuestionTechStack: {"PostgreSQL", "Kubernetes"}}}
	p := Build(assessment.CategoryTechStack, in)
	assert.Contains(t, p, `["PostgreSQL","Kubernetes"]`)
}

func TestBuildMissingAnswersYieldEmptyList(t *testing.T) {
	p := Build(assessment.CategoryTeamSkills, Inputs{DocumentContext: "ctx"})
	assert.Contains(t, p, "- Team Roles & Stakeholders: []")
}

func TestBuildDistinctPersonas(t *testing.T) {
	in := Inputs{}
	assert.Contains(t, Build(assessment.CategoryBusinessStrategy, in), "AI strategy consultant")
	assert.Contains(t, Build(assessment.CategoryTeamSkills, in), "AI project team manager")
	assert.Contains(t, Build(assessment.CategoryTechStack, in), "solutions architect")
	assert.Contains(t, Build(assessment.CategoryDataGovernance, in), "data governance and privacy expert")
}

func TestJoinContext(t *testing.T) {
	joined := JoinContext([]string{"newest summary", "", "  ", "older summary"})
	assert.Equal(t, "newest summary\n\n---\n\nolder summary", joined)

	assert.Equal(t, "", JoinContext(nil))
	assert.Equal(t, "", JoinContext([]string{"", "   "}))
}

func TestQuestionnairePromptEmbedsContext(t *testing.T) {
	p := Questionnaire("some document context")
	assert.Contains(t, p, "some document context")
	assert.Contains(t, p, "allowOther")
}

func TestSummarizePromptEmbedsText(t *testing.T) {
	assert.Contains(t, Summarize("full extracted text"), "full extracted text")
}
