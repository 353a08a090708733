package workflow

import (
	"fmt"
	"strings"

	"github.com/delverhq/delver/pkg/agent"
	"github.com/delverhq/delver/pkg/config"
	"github.com/delverhq/delver/pkg/queue"
	"github.com/delverhq/delver/pkg/tools"
)

// Stage names, used as progress phases and agent names.
const (
	StageResearch = "research"
	StageAnalyze  = "analyze"
	StageWrite    = "write"
)

// Stage temperatures. Research explores, analysis stays grounded, writing
// sits in between.
const (
	researchTemperature = 0.7
	analyzeTemperature  = 0.3
	writeTemperature    = 0.5
)

const researchSystemPrompt = `You are a research agent gathering sources on a topic.

Work in a loop: search the web, read the extracted page content, store what
is useful, and keep refining your queries. Use the database_tool with
action "store" and data_type "extracted_content" for full page content and
"source_content" for source material you expect to cite. Include the page
URL in the metadata of every stored row and a relevance_score reflecting
how useful it is. Store a "game_plan" row early describing your approach.

Vary your queries to cover different angles of the topic. Do not repeat a
search that already returned results you stored. When you have stored at
least the required number of sources and the topic is well covered from
multiple angles, respond with a short final summary of what you gathered
instead of calling another tool.`

const analyzeSystemPrompt = `You are an analysis agent working over previously gathered research.

Retrieve the stored sources with the database_tool (actions
"retrieve_sources" and "get_summary"), then analyze them: identify
patterns and recurring themes, surface contradictions between sources, and
estimate confidence in the main claims. Use analysis_tool for structured
analysis, fact_check_tool to verify key claims against source content, and
relevance_scoring_tool to rank material.

Store your findings with the database_tool using data_type "analysis".
Your stored analysis must cover patterns, contradictions, and confidence
estimates. When the analysis is stored, respond with a short final summary
of your conclusions instead of calling another tool.`

const writeSystemPrompt = `You are a report-writing agent producing the final research report.

Retrieve stored sources and analysis with the database_tool, then write a
markdown report with exactly this structure:

# <Title>
## Executive Summary
<2-4 paragraph summary>
## Key Findings
1. **<Finding title>:** <finding body>
2. **<Finding title>:** <finding body>
## <One or more body sections>
## References
1. <citation>
2. <citation>

Use report_formatter_tool to assemble the report and citation_tool to
format references. Cite sources inline as [text](url) markdown links where
relevant. Your final answer must be ONLY the complete markdown report,
nothing before or after it.`

// researchStage builds the Stage A agent configuration and task. done ends
// the stage early once the minimum source count is stored.
func researchStage(cfg *config.ResearchConfig, job *queue.Job, onTool func(string, map[string]any, tools.Result), done func() bool) (agent.Config, string) {
	params := job.Data.Parameters

	var constraints []string
	constraints = append(constraints,
		fmt.Sprintf("Store at least %d and at most %d sources.", params.MinSources, params.MaxSources))
	if params.DateRange != "" {
		constraints = append(constraints, fmt.Sprintf("Prefer material from the last %s.", params.DateRange))
	}
	if len(params.AllowedDomains) > 0 {
		constraints = append(constraints,
			fmt.Sprintf("Only these domains are allowed: %s.", strings.Join(params.AllowedDomains, ", ")))
	}
	if params.Depth != "" {
		constraints = append(constraints, fmt.Sprintf("Research depth: %s.", params.Depth))
	}
	if params.Language != "" {
		constraints = append(constraints, fmt.Sprintf("Search language: %s.", params.Language))
	}

	task := fmt.Sprintf("Research the following topic thoroughly.\n\nTopic: %s\nSession: %s\n\n%s",
		job.Data.Topic, job.SessionID, strings.Join(constraints, "\n"))

	return agent.Config{
		Name:              StageResearch,
		SystemPrompt:      researchSystemPrompt,
		Tools:             []string{"search_tool", "database_tool", "analysis_tool", "summarization_tool", "citation_tool"},
		Temperature:       researchTemperature,
		MaxIterations:     cfg.MaxIterations,
		MaxIdenticalCalls: cfg.MaxIdenticalToolCalls,
		OnToolResult:      onTool,
		Done:              done,
	}, task
}

// analyzeStage builds the Stage B agent configuration and task.
func analyzeStage(cfg *config.ResearchConfig, job *queue.Job) (agent.Config, string) {
	task := fmt.Sprintf("Analyze the research gathered for this topic.\n\nTopic: %s\nSession: %s",
		job.Data.Topic, job.SessionID)

	return agent.Config{
		Name:              StageAnalyze,
		SystemPrompt:      analyzeSystemPrompt,
		Tools:             []string{"database_tool", "analysis_tool", "fact_check_tool", "relevance_scoring_tool"},
		Temperature:       analyzeTemperature,
		MaxIterations:     cfg.MaxIterations,
		MaxIdenticalCalls: cfg.MaxIdenticalToolCalls,
	}, task
}

// writeStage builds the Stage C agent configuration and task.
func writeStage(cfg *config.ResearchConfig, job *queue.Job) (agent.Config, string) {
	params := job.Data.Parameters
	task := fmt.Sprintf("Write the final research report.\n\nTopic: %s\nSession: %s\nReport length: %s\nLanguage: %s",
		job.Data.Topic, job.SessionID, params.ReportLength, params.Language)

	return agent.Config{
		Name:              StageWrite,
		SystemPrompt:      writeSystemPrompt,
		Tools:             []string{"report_formatter_tool", "citation_tool", "summarization_tool", "database_tool"},
		Temperature:       writeTemperature,
		MaxIterations:     cfg.MaxIterations,
		MaxIdenticalCalls: cfg.MaxIdenticalToolCalls,
	}, task
}

// repairStage builds the constrained re-prompt used when the written
// report is missing mandatory sections.
func repairStage(cfg *config.ResearchConfig, job *queue.Job, draft string, cause error) (agent.Config, string) {
	task := fmt.Sprintf(`The report below is missing mandatory sections: %v.

Rewrite it so it contains a "# Title" heading, a "## Executive Summary"
section, a "## Key Findings" section with numbered findings, and a
"## References" section. Keep all existing content. Respond with ONLY the
corrected markdown report.

%s`, cause, draft)

	return agent.Config{
		Name:              StageWrite + "-repair",
		SystemPrompt:      writeSystemPrompt,
		Tools:             []string{"report_formatter_tool", "citation_tool"},
		Temperature:       writeTemperature,
		MaxIterations:     10,
		MaxIdenticalCalls: cfg.MaxIdenticalToolCalls,
	}, task
}
