package prompt

import "fmt"

// Questionnaire renders the prompt that generates the adaptive
// multiple-choice questionnaire from the project's document context.
func Questionnaire(documentContext string) string {
	return fmt.Sprintf(`You are an expert AI Readiness Assessor. Your job is to generate a targeted, multiple-choice questionnaire based on the provided document context. The answers to this questionnaire will be used to create a detailed analysis report covering four key areas.

For each of the four areas below, generate 1-2 focused questions. For each question, extract plausible options directly from the context. If the context is missing crucial information for an area, generate questions that will help fill that gap.

The four analysis areas are:
1. **Business Strategy & KPIs:** Questions about primary goals, objectives, and success metrics.
2. **Team & Skills:** Questions to identify the roles and stakeholders involved in the project.
3. **Technology Stack:** Questions to determine the software, platforms, and infrastructure being used.
4. **Data & Governance:** Questions about available datasets, data quality, and any existing privacy or governance policies.

Return the entire questionnaire as a single, valid JSON array. Each object in the array must have this exact format:
{
  "id": "a_unique_camelCase_id",
  "label": "The question you generated.",
  "options": ["Option 1 from context", "Option 2 from context"],
  "allowOther": true
}

Here is the document context to analyze:
---
%s
---`, documentContext)
}

// Summarize renders the prompt that condenses extracted document text into
// the context summary stored on the document record.
func Summarize(text string) string {
	return fmt.Sprintf("Summarize and extract the main ideas from this document:\n%s", text)
}
