// Package scoring computes the derived metrics over the registered catalog:
// per-challenge impact and coverage, quick wins, and the aggregate
// readiness grade. Every function is a pure computation over the registry
// snapshot; identical inputs always produce identical output.
package scoring

import (
	"sort"

	"aiswe/internal/catalog"
	"aiswe/internal/registry"
)

// Grade is the letter summarizing aggregate coverage-weighted impact.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// CoverageTarget is the summed effectiveness at which a challenge counts as
// fully covered.
const CoverageTarget = 1.0

// relatedWeight is the impact contribution per related challenge.
const relatedWeight = 0.5

// Scorer computes derived metrics over challenge and solution registries.
type Scorer struct {
	challenges *registry.ChallengeRegistry
	solutions  *registry.SolutionRegistry
}

// NewScorer creates a scorer over the given registries.
func NewScorer(challenges *registry.ChallengeRegistry, solutions *registry.SolutionRegistry) *Scorer {
	return &Scorer{challenges: challenges, solutions: solutions}
}

// ImpactScore computes severity_weight * (1 + |affected_categories|)
// + 0.5 * |related_challenges|. Strictly positive for any valid challenge.
func ImpactScore(c catalog.Challenge) float64 {
	return float64(c.Severity.Rank())*(1+float64(len(c.AffectedCategories))) +
		relatedWeight*float64(len(c.RelatedChallenges))
}

// Coverage sums the effectiveness of every registered solution addressing
// the challenge.
func (s *Scorer) Coverage(challengeID string) float64 {
	total := 0.0
	for _, sol := range s.solutions.ListAll() {
		for _, addressed := range sol.AddressedChallenges {
			if addressed == challengeID {
				total += sol.Effectiveness
				break
			}
		}
	}
	return total
}

// IsGap reports whether the challenge is a coverage gap: coverage below the
// target and severity High or Critical.
func (s *Scorer) IsGap(c catalog.Challenge) bool {
	return s.Coverage(c.ID) < CoverageTarget && c.Severity.Rank() >= catalog.SeverityHigh.Rank()
}

// ChallengeScore is the derived view of one challenge.
type ChallengeScore struct {
	ChallengeID string  `json:"challengeId"`
	Name        string  `json:"name"`
	Severity    string  `json:"severity"`
	ImpactScore float64 `json:"impactScore"`
	Coverage    float64 `json:"coverage"`
	IsGap       bool    `json:"isGap"`
}

// RankedChallenges returns every registered challenge scored and ordered by
// impact descending, ties broken by id lexical order.
func (s *Scorer) RankedChallenges() []ChallengeScore {
	challenges := s.challenges.ListAll()
	scores := make([]ChallengeScore, 0, len(challenges))
	for _, c := range challenges {
		scores = append(scores, ChallengeScore{
			ChallengeID: c.ID,
			Name:        c.Name,
			Severity:    string(c.Severity),
			ImpactScore: ImpactScore(c),
			Coverage:    s.Coverage(c.ID),
			IsGap:       s.IsGap(c),
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].ImpactScore != scores[j].ImpactScore {
			return scores[i].ImpactScore > scores[j].ImpactScore
		}
		return scores[i].ChallengeID < scores[j].ChallengeID
	})
	return scores
}

// ReadinessScore aggregates min(coverage, 1.0) over all challenges weighted
// by impact score, normalized to [0,1]. Zero challenges means zero
// readiness, not an error.
func (s *Scorer) ReadinessScore() float64 {
	challenges := s.challenges.ListAll()
	if len(challenges) == 0 {
		return 0
	}

	weighted := 0.0
	totalImpact := 0.0
	for _, c := range challenges {
		impact := ImpactScore(c)
		cov := s.Coverage(c.ID)
		if cov > CoverageTarget {
			cov = CoverageTarget
		}
		weighted += cov * impact
		totalImpact += impact
	}
	if totalImpact == 0 {
		return 0
	}
	return weighted / totalImpact
}

// ReadinessGrade maps the readiness score to a letter grade.
func (s *Scorer) ReadinessGrade() Grade {
	return GradeFor(s.ReadinessScore())
}

// GradeFor converts a normalized readiness score to a letter grade.
func GradeFor(score float64) Grade {
	switch {
	case score >= 0.9:
		return GradeA
	case score >= 0.75:
		return GradeB
	case score >= 0.6:
		return GradeC
	case score >= 0.4:
		return GradeD
	default:
		return GradeF
	}
}

// QuickWins returns all solutions deployable within maxMonths, sorted by
// effectiveness descending, ties by ascending timeline, then id.
func (s *Scorer) QuickWins(maxMonths int) []catalog.Solution {
	wins := make([]catalog.Solution, 0)
	for _, sol := range s.solutions.ListAll() {
		if sol.TimelineMonths <= maxMonths {
			wins = append(wins, sol)
		}
	}
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Effectiveness != wins[j].Effectiveness {
			return wins[i].Effectiveness > wins[j].Effectiveness
		}
		if wins[i].TimelineMonths != wins[j].TimelineMonths {
			return wins[i].TimelineMonths < wins[j].TimelineMonths
		}
		return wins[i].ID < wins[j].ID
	})
	return wins
}

// FeasibilityScore weighs a solution's effectiveness by its feasibility
// level (low 0.4, medium 0.7, high 1.0).
func FeasibilityScore(s catalog.Solution) float64 {
	return s.Feasibility.FeasibilityWeight() * s.Effectiveness
}

// RankByFeasibility orders solutions by feasibility-weighted effectiveness
// descending, ties by ascending timeline, then id.
func RankByFeasibility(solutions []catalog.Solution) []catalog.Solution {
	ranked := make([]catalog.Solution, len(solutions))
	copy(ranked, solutions)
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := FeasibilityScore(ranked[i]), FeasibilityScore(ranked[j])
		if si != sj {
			return si > sj
		}
		if ranked[i].TimelineMonths != ranked[j].TimelineMonths {
			return ranked[i].TimelineMonths < ranked[j].TimelineMonths
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
