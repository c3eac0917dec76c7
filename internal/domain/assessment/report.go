package assessment

import (
	"encoding/json"
	"time"
)

// Category enum: the four fixed analysis dimensions.
type Category string

const (
	CategoryBusinessStrategy Category = "business-strategy"
	CategoryTeamSkills       Category = "team-skills"
	CategoryTechStack        Category = "tech-stack"
	CategoryDataGovernance   Category = "data-governance"
)

// Categories returns the four categories in report order.
func Categories() []Category {
	return []Category{
		CategoryBusinessStrategy,
		CategoryTeamSkills,
		CategoryTechStack,
		CategoryDataGovernance,
	}
}

// ReportPayload is the merged four-key analysis document. Each category is
// kept as raw JSON because the shape originates from model text and is not
// guaranteed complete; typed views below decode it tolerantly.
type ReportPayload struct {
	BusinessStrategy json.RawMessage `json:"businessStrategyAnalysis,omitempty"`
	TeamSkills       json.RawMessage `json:"teamSkillsAnalysis,omitempty"`
	TechStack        json.RawMessage `json:"techStackAnalysis,omitempty"`
	DataGovernance   json.RawMessage `json:"dataGovernanceAnalysis,omitempty"`
}

// Set stores a category payload.
func (p *ReportPayload) Set(c Category, v json.RawMessage) {
	switch c {
	case CategoryBusinessStrategy:
		p.BusinessStrategy = v
	case CategoryTeamSkills:
		p.TeamSkills = v
	case CategoryTechStack:
		p.TechStack = v
	case CategoryDataGovernance:
		p.DataGovernance = v
	}
}

// Get returns the raw payload for a category, nil when absent.
func (p ReportPayload) Get(c Category) json.RawMessage {
	switch c {
	case CategoryBusinessStrategy:
		return p.BusinessStrategy
	case CategoryTeamSkills:
		return p.TeamSkills
	case CategoryTechStack:
		return p.TechStack
	case CategoryDataGovernance:
		return p.DataGovernance
	}
	return nil
}

// Aggregate Root: Report, the merged analysis for one project.
// SubmissionVersion records which submission the report was computed from,
// so a report is never served against newer answers.
type Report struct {
	ProjectID         string        `json:"projectId"`
	Report            ReportPayload `json:"report"`
	SubmissionVersion int64         `json:"submissionVersion"`
	GeneratedAt       time.Time     `json:"generatedAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

//
// ==== Typed render views ====
//
// Every field is optional; decoding a missing or differently shaped payload
// yields zero values instead of failing, so renderers never have to probe.

type UseCase struct {
	UseCase     string `json:"useCase"`
	Explanation string `json:"explanation"`
}

type ObjectiveAnalysis struct {
	Objective         string    `json:"objective"`
	Analysis          string    `json:"analysis"`
	SuggestedUseCases []UseCase `json:"suggestedUseCases"`
}

type TeamSkillsView struct {
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

type TechStackView struct {
	Analysis        string   `json:"analysis"`
	Bottlenecks     []string `json:"bottlenecks"`
	Recommendations []string `json:"recommendations"`
}

type RiskCategory struct {
	Category string   `json:"category"`
	Risks    []string `json:"risks"`
}

type DataGovernanceView struct {
	DataSuitability           string         `json:"dataSuitability"`
	IdentifiedRisks           []RiskCategory `json:"identifiedRisks"`
	GovernanceRecommendations []string       `json:"governanceRecommendations"`
}

// BusinessStrategyView decodes the business-strategy payload, nil when
// absent or not an array of objective analyses.
func (p ReportPayload) BusinessStrategyView() []ObjectiveAnalysis {
	var v []ObjectiveAnalysis
	if len(p.BusinessStrategy) == 0 || json.Unmarshal(p.BusinessStrategy, &v) != nil {
		return nil
	}
	return v
}

func (p ReportPayload) TeamSkillsView() TeamSkillsView {
	var v TeamSkillsView
	if len(p.TeamSkills) > 0 {
		_ = json.Unmarshal(p.TeamSkills, &v)
	}
	return v
}

func (p ReportPayload) TechStackView() TechStackView {
	var v TechStackView
	if len(p.TechStack) > 0 {
		_ = json.Unmarshal(p.TechStack, &v)
	}
	return v
}

func (p ReportPayload) DataGovernanceView() DataGovernanceView {
	var v DataGovernanceView
	if len(p.DataGovernance) > 0 {
		_ = json.Unmarshal(p.DataGovernance, &v)
	}
	return v
}
