package query

import (
	"fmt"
	"time"

	"aiswe/internal/catalog"
	"aiswe/internal/scoring"
)

// BenchmarkResponse summarizes the whole catalog: how tasks distribute
// across the four classification dimensions, where the severe challenges
// are, and which gaps to attack first.
type BenchmarkResponse struct {
	TaskCount          int            `json:"taskCount"`
	ChallengeCount     int            `json:"challengeCount"`
	SolutionCount      int            `json:"solutionCount"`
	TasksByCategory    map[string]int `json:"tasksByCategory"`
	TasksByScope       map[string]int `json:"tasksByScope"`
	TasksByComplexity  map[string]int `json:"tasksByComplexity"`
	TasksByInterv      map[string]int `json:"tasksByIntervention"`
	CriticalChallenges int            `json:"criticalChallenges"`
	HighChallenges     int            `json:"highChallenges"`
	ReadinessScore     float64        `json:"readinessScore"`
	ReadinessGrade     scoring.Grade  `json:"readinessGrade"`
	Recommendations    []string       `json:"recommendations"`
	Provenance         *Provenance    `json:"provenance,omitempty"`
}

// Benchmark computes the catalog-wide summary. Recommendations name the
// highest-impact coverage gaps, capped by the configured limit.
func (e *Engine) Benchmark() (*BenchmarkResponse, error) {
	start := time.Now()
	e.freeze()

	resp := &BenchmarkResponse{
		TaskCount:         e.tasks.Len(),
		ChallengeCount:    e.challenges.Len(),
		SolutionCount:     e.solutions.Len(),
		TasksByCategory:   make(map[string]int),
		TasksByScope:      make(map[string]int),
		TasksByComplexity: make(map[string]int),
		TasksByInterv:     make(map[string]int),
		ReadinessScore:    e.scorer.ReadinessScore(),
		ReadinessGrade:    e.scorer.ReadinessGrade(),
	}

	for _, t := range e.tasks.ListAll() {
		resp.TasksByCategory[string(t.Category)]++
		resp.TasksByScope[string(t.Scope)]++
		resp.TasksByComplexity[string(t.Complexity)]++
		resp.TasksByInterv[string(t.Intervention)]++
	}

	for _, c := range e.challenges.ListAll() {
		switch c.Severity {
		case catalog.SeverityCritical:
			resp.CriticalChallenges++
		case catalog.SeverityHigh:
			resp.HighChallenges++
		}
	}

	limit := e.cfg.Analysis.TopChallenges
	for _, cs := range e.scorer.RankedChallenges() {
		if len(resp.Recommendations) >= limit {
			break
		}
		if !cs.IsGap {
			continue
		}
		resp.Recommendations = append(resp.Recommendations, fmt.Sprintf(
			"Invest in %q (%s, impact %.1f, coverage %.2f)",
			cs.Name, cs.Severity, cs.ImpactScore, cs.Coverage))
	}

	resp.Provenance = e.provenance(start)
	return resp, nil
}
