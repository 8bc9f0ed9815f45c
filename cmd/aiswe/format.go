package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"aiswe/internal/claudecmd"
	"aiswe/internal/query"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// emitResponse formats, prints, and optionally saves a response. Exits on
// formatting or save failure.
func emitResponse(resp interface{}) {
	output, err := FormatResponse(resp, OutputFormat(formatFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	if saveFlag != "" {
		if err := os.WriteFile(saveFlag, []byte(output+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving output: %v\n", err)
			os.Exit(1)
		}
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *query.TaskListResponse:
		return formatTaskListHuman(v)
	case *query.TaskEvaluationResponse:
		return formatTaskEvalHuman(v)
	case *query.ChallengeListResponse:
		return formatChallengeListHuman(v)
	case *query.RelatedChallengesResponse:
		return formatRelatedHuman(v)
	case *query.ChallengeAnalysisResponse:
		return formatAnalysisHuman(v)
	case *query.SolutionListResponse:
		return formatSolutionListHuman(v)
	case *query.ChallengeSolutionsResponse:
		return formatChallengeSolutionsHuman(v)
	case *query.QuickWinsResponse:
		return formatQuickWinsHuman(v)
	case *query.RoadmapResponse:
		return formatRoadmapHuman(v)
	case *query.ReadinessResponse:
		return formatReadinessHuman(v)
	case *query.BenchmarkResponse:
		return formatBenchmarkHuman(v)
	case []claudecmd.Command:
		return formatCommandListHuman(v)
	case claudecmd.Command:
		return formatCommandHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatTaskListHuman(resp *query.TaskListResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Tasks\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Found %d tasks\n\n", resp.TotalCount))

	for i, t := range resp.Tasks {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, t.Name, t.ID))
		b.WriteString(fmt.Sprintf("   Category: %s, Scope: %s\n", t.Category, t.Scope))
		b.WriteString(fmt.Sprintf("   Complexity: %s, Intervention: %s\n", t.Complexity, t.Intervention))
		if t.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", t.Description))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func formatTaskEvalHuman(resp *query.TaskEvaluationResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Task Evaluation: %s\n", resp.Task.Name))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Category: %s, Scope: %s\n", resp.Task.Category, resp.Task.Scope))
	b.WriteString(fmt.Sprintf("Complexity: %s, Intervention: %s\n\n", resp.Task.Complexity, resp.Task.Intervention))

	b.WriteString(fmt.Sprintf("Readiness: %.2f\n", resp.ReadinessScore))
	b.WriteString(fmt.Sprintf("%s\n\n", resp.Recommendation))

	if len(resp.Challenges) > 0 {
		b.WriteString("Blocking Challenges:\n")
		for _, c := range resp.Challenges {
			gapMarker := ""
			if c.IsGap {
				gapMarker = " [gap]"
			}
			b.WriteString(fmt.Sprintf("  %s (%s) impact %.1f, coverage %.2f%s\n",
				c.Name, c.Severity, c.ImpactScore, c.Coverage, gapMarker))
		}
		b.WriteString("\n")
	}

	if len(resp.Solutions) > 0 {
		b.WriteString("Applicable Solutions:\n")
		for _, s := range resp.Solutions {
			b.WriteString(fmt.Sprintf("  %s (%s) feasibility %s, %d months, effectiveness %.2f\n",
				s.Name, s.Category, s.Feasibility, s.TimelineMonths, s.Effectiveness))
		}
	}

	return b.String(), nil
}

func formatChallengeListHuman(resp *query.ChallengeListResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Challenges\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Found %d challenges\n\n", resp.TotalCount))

	for i, c := range resp.Challenges {
		b.WriteString(fmt.Sprintf("%d. %s (%s) - %s\n", i+1, c.Name, c.ID, c.Severity))
		if len(c.AffectedCategories) > 0 {
			cats := make([]string, 0, len(c.AffectedCategories))
			for _, cat := range c.AffectedCategories {
				cats = append(cats, string(cat))
			}
			b.WriteString(fmt.Sprintf("   Affects: %s\n", strings.Join(cats, ", ")))
		}
		if len(c.RelatedChallenges) > 0 {
			b.WriteString(fmt.Sprintf("   Related: %s\n", strings.Join(c.RelatedChallenges, ", ")))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func formatRelatedHuman(resp *query.RelatedChallengesResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Challenges related to: %s (depth %d)\n", resp.ChallengeID, resp.Depth))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Found %d related challenges\n\n", len(resp.Related)))

	for i, c := range resp.Related {
		b.WriteString(fmt.Sprintf("%d. %s (%s) - %s\n", i+1, c.Name, c.ID, c.Severity))
	}

	return b.String(), nil
}

func formatAnalysisHuman(resp *query.ChallengeAnalysisResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Challenge Analysis\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if resp.Category != "" {
		b.WriteString(fmt.Sprintf("Category: %s\n", resp.Category))
	}
	b.WriteString(fmt.Sprintf("Challenges: %d (%d fully covered)\n\n", resp.TotalChallenges, resp.CoveredCount))

	b.WriteString("Ranked by impact:\n")
	for i, c := range resp.Ranked {
		gapMarker := ""
		if c.IsGap {
			gapMarker = " [gap]"
		}
		b.WriteString(fmt.Sprintf("  %d. %s (%s) impact %.1f, coverage %.2f%s\n",
			i+1, c.Name, c.Severity, c.ImpactScore, c.Coverage, gapMarker))
	}

	if len(resp.CoverageGaps) > 0 {
		b.WriteString(fmt.Sprintf("\nCoverage gaps: %s\n", strings.Join(resp.CoverageGaps, ", ")))
	}

	return b.String(), nil
}

func formatSolutionListHuman(resp *query.SolutionListResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Solutions (feasibility ranked)\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Found %d solutions\n\n", resp.TotalCount))

	for i, s := range resp.Solutions {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, s.Name, s.ID))
		b.WriteString(fmt.Sprintf("   Category: %s, Feasibility: %s\n", s.Category, s.Feasibility))
		b.WriteString(fmt.Sprintf("   Timeline: %d months, Effectiveness: %.2f\n", s.TimelineMonths, s.Effectiveness))
		if len(s.AddressedChallenges) > 0 {
			b.WriteString(fmt.Sprintf("   Addresses: %s\n", strings.Join(s.AddressedChallenges, ", ")))
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func formatChallengeSolutionsHuman(resp *query.ChallengeSolutionsResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Solutions addressing: %s\n", resp.ChallengeID))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Coverage: %.2f\n\n", resp.Coverage))

	for i, s := range resp.Solutions {
		b.WriteString(fmt.Sprintf("%d. %s (%s) %d months, effectiveness %.2f\n",
			i+1, s.Name, s.Feasibility, s.TimelineMonths, s.Effectiveness))
	}

	return b.String(), nil
}

func formatQuickWinsHuman(resp *query.QuickWinsResponse) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Quick Wins (within %d months)\n", resp.MaxMonths))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(resp.Solutions) == 0 {
		b.WriteString("No solutions deployable within this window.\n")
		return b.String(), nil
	}

	for i, s := range resp.Solutions {
		b.WriteString(fmt.Sprintf("%d. %s - %d months, effectiveness %.2f\n",
			i+1, s.Name, s.TimelineMonths, s.Effectiveness))
	}

	return b.String(), nil
}

func formatRoadmapHuman(resp *query.RoadmapResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Implementation Roadmap\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, phase := range resp.Roadmap.Phases {
		b.WriteString(fmt.Sprintf("Phase: %s\n", phase.Window))
		for _, item := range phase.Items {
			b.WriteString(fmt.Sprintf("  %s (impact %.1f)\n", item.ChallengeID, item.ImpactScore))
			for _, sid := range item.SolutionIDs {
				b.WriteString(fmt.Sprintf("    - %s\n", sid))
			}
			b.WriteString(fmt.Sprintf("    coverage after phase: %.2f\n", item.CumulativeCoverage))
		}
		b.WriteString("\n")
	}

	if len(resp.Roadmap.UnaddressedGaps) > 0 {
		b.WriteString("Unaddressed Gaps:\n")
		for _, gap := range resp.Roadmap.UnaddressedGaps {
			b.WriteString(fmt.Sprintf("  ! %s (%s, impact %.1f)\n", gap.ChallengeID, gap.Severity, gap.ImpactScore))
		}
	}

	return b.String(), nil
}

func formatReadinessHuman(resp *query.ReadinessResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Readiness\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Score: %.2f\n", resp.Score))
	b.WriteString(fmt.Sprintf("Grade: %s\n", resp.Grade))

	return b.String(), nil
}

func formatBenchmarkHuman(resp *query.BenchmarkResponse) (string, error) {
	var b strings.Builder

	b.WriteString("Current State Benchmark\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Catalog: %d tasks, %d challenges, %d solutions\n",
		resp.TaskCount, resp.ChallengeCount, resp.SolutionCount))
	b.WriteString(fmt.Sprintf("Severe challenges: %d critical, %d high\n", resp.CriticalChallenges, resp.HighChallenges))
	b.WriteString(fmt.Sprintf("Readiness: %.2f (grade %s)\n\n", resp.ReadinessScore, resp.ReadinessGrade))

	b.WriteString("Task distribution:\n")
	writeDistribution(&b, "Category", resp.TasksByCategory)
	writeDistribution(&b, "Scope", resp.TasksByScope)
	writeDistribution(&b, "Complexity", resp.TasksByComplexity)
	writeDistribution(&b, "Intervention", resp.TasksByInterv)

	if len(resp.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for i, rec := range resp.Recommendations {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
		}
	}

	return b.String(), nil
}

// writeDistribution prints one dimension's counts with stable key order.
func writeDistribution(b *strings.Builder, label string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString(fmt.Sprintf("  %s:\n", label))
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("    %s: %d\n", k, counts[k]))
	}
}

func formatCommandListHuman(commands []claudecmd.Command) (string, error) {
	var b strings.Builder

	b.WriteString("Available Commands\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, c := range commands {
		b.WriteString(fmt.Sprintf("  %s\n", c.Usage))
		b.WriteString(fmt.Sprintf("      %s\n", c.Summary))
	}

	return b.String(), nil
}

func formatCommandHuman(c claudecmd.Command) (string, error) {
	return fmt.Sprintf("%s\n\nUsage: aiswe claude %s\n", c.Summary, c.Usage), nil
}
