// Package prompt renders the fixed prompt templates sent to the LLM.
// Builders are pure functions over already-validated inputs.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
)

// Question ids the four category prompts draw their answer subsets from.
const (
	QuestionBusinessObjectives = "businessObjectives"
	QuestionKPIs               = "kpis"
	QuestionStakeholders       = "stakeholders"
	QuestionTechStack          = "techStack"
	QuestionDatasets           = "datasets"
	QuestionGovernance         = "governance"
)

// QuestionIDs lists the question ids a category prompt consumes.
func QuestionIDs(c assessment.Category) []string {
	switch c {
	case assessment.CategoryBusinessStrategy:
		return []string{QuestionBusinessObjectives, QuestionKPIs}
	case assessment.CategoryTeamSkills:
		return []string{QuestionStakeholders}
	case assessment.CategoryTechStack:
		return []string{QuestionTechStack}
	case assessment.CategoryDataGovernance:
		return []string{QuestionDatasets, QuestionGovernance}
	}
	return nil
}

// Inputs carries everything a category template interpolates.
type Inputs struct {
	// DocumentContext is the aggregated, newline-joined set of per-document
	// summaries for the project, interpolated verbatim.
	DocumentContext string
	// Answers maps question id to the submitted answers for that question.
	// A missing id interpolates as an empty JSON list.
	Answers map[string][]string
}

func (in Inputs) answersJSON(questionID string) string {
	answers := in.Answers[questionID]
	if answers == nil {
		answers = []string{}
	}
	b, _ := json.Marshal(answers)
	return string(b)
}

// JoinContext aggregates per-document summaries into one context block:
// blank entries dropped, the rest joined by a separator line. Callers pass
// summaries most-recent-first.
func JoinContext(summaries []string) string {
	kept := make([]string, 0, len(summaries))
	for _, s := range summaries {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n\n---\n\n")
}

// Build renders the prompt for one analysis category.
func Build(c assessment.Category, in Inputs) string {
	switch c {
	case assessment.CategoryBusinessStrategy:
		return fmt.Sprintf(`You are an expert AI strategy consultant. Your task is to analyze the user's project based on their questionnaire answers and the context from their uploaded documents. Suggest specific, actionable AI use-cases.

Return your analysis as a valid JSON array, enclosed in `+"```json ... ```"+`. Each object in the array must correspond to one of the original objectives and contain "objective", "analysis", and "suggestedUseCases" (an array of objects with "useCase" and "explanation").

CONTEXT FROM UPLOADED DOCUMENTS:
---
%s
---

USER'S QUESTIONNAIRE ANSWERS:
- Business Objectives: %s
- KPIs: %s`,
			in.DocumentContext,
			in.answersJSON(QuestionBusinessObjectives),
			in.answersJSON(QuestionKPIs),
		)

	case assessment.CategoryTeamSkills:
		return fmt.Sprintf(`You are an AI project team manager. Based on the user's questionnaire answers about their team and the context from their uploaded documents, assess the team's readiness for a typical AI project.

Return a valid JSON object, enclosed in `+"```json ... ```"+`, with three keys:
1. "strengths": A list of key strengths (e.g., "Strong project management presence").
2. "gaps": A list of potential skill gaps (e.g., "Missing a dedicated ML Engineer").
3. "recommendations": A list of high-level training or hiring recommendations.

CONTEXT FROM UPLOADED DOCUMENTS:
---
%s
---

USER'S QUESTIONNAIRE ANSWERS:
- Team Roles & Stakeholders: %s`,
			in.DocumentContext,
			in.answersJSON(QuestionStakeholders),
		)

	case assessment.CategoryTechStack:
		return fmt.Sprintf(`You are a solutions architect specializing in AI/ML infrastructure. Analyze the following technology stack based on user answers and document context. Assess its compatibility for AI development (data processing, model training, deployment).

Return a valid JSON object, enclosed in `+"```json ... ```"+`, with three keys:
1. "analysis": A summary of the stack's strengths and weaknesses for AI.
2. "bottlenecks": A list of potential bottlenecks or missing components (e.g., "No data warehousing solution").
3. "recommendations": A list of actionable recommendations for improvement.

CONTEXT FROM UPLOADED DOCUMENTS:
---
%s
---

USER'S QUESTIONNAIRE ANSWERS:
- Technology Stack: %s`,
			in.DocumentContext,
			in.answersJSON(QuestionTechStack),
		)

	case assessment.CategoryDataGovernance:
		return fmt.Sprintf(`You are a data governance and privacy expert. Review the following list of datasets and governance practices based on user answers and document context. Assess the potential for using this data in an AI model.

Return a valid JSON object, enclosed in `+"```json ... ```"+`, with three keys:
1. "dataSuitability": A summary of how suitable the described data is for AI.
2. "identifiedRisks": A list of potential risks related to privacy (PII), bias, or compliance.
3. "governanceRecommendations": A list of concrete steps to improve data governance.

CONTEXT FROM UPLOADED DOCUMENTS:
---
%s
---

USER'S QUESTIONNAIRE ANSWERS:
- Available Datasets: %s
- Governance Practices: %s`,
			in.DocumentContext,
			in.answersJSON(QuestionDatasets),
			in.answersJSON(QuestionGovernance),
		)
	}
	return ""
}
