// Package roadmap orders challenges by impact and assigns feasible
// solutions into phased output. Planning is purely functional over the
// registry snapshot: re-running against unchanged registries yields an
// identical roadmap.
package roadmap

import (
	"fmt"
	"sort"

	"aiswe/internal/catalog"
	"aiswe/internal/registry"
	"aiswe/internal/scoring"
	"aiswe/internal/xref"
)

// Stage tracks planner progress through its lifecycle.
type Stage string

const (
	StageUnplanned Stage = "UNPLANNED"
	StagePhased    Stage = "PHASED"
	StageFinalized Stage = "FINALIZED"
)

// window is a fixed phase bucket in months, inclusive on both ends.
type window struct {
	label string
	min   int
	max   int
}

// phaseWindows are the fixed roadmap buckets. Timelines beyond the last
// bucket fall into an overflow research window emitted only when needed.
var phaseWindows = []window{
	{label: "0-6 months", min: 0, max: 6},
	{label: "7-12 months", min: 7, max: 12},
	{label: "13-24 months", min: 13, max: 24},
}

const overflowLabel = "25+ months"

// PhaseItem is one challenge's slice of a phase: the solutions assigned to
// it whose timelines land in the phase window, with coverage accumulated
// through this phase. Cumulative coverage includes solutions shared with
// higher-ranked challenges.
type PhaseItem struct {
	ChallengeID        string   `json:"challengeId"`
	ImpactScore        float64  `json:"impactScore"`
	SolutionIDs        []string `json:"solutionIds"`
	CumulativeCoverage float64  `json:"cumulativeCoverage"`
}

// Phase is one time window of the roadmap.
type Phase struct {
	Window string      `json:"window"`
	Items  []PhaseItem `json:"items"`
}

// Gap is a challenge left without any addressing solution.
type Gap struct {
	ChallengeID string  `json:"challengeId"`
	ImpactScore float64 `json:"impactScore"`
	Severity    string  `json:"severity"`
}

// Roadmap is the finalized plan.
type Roadmap struct {
	Stage           Stage   `json:"stage"`
	Phases          []Phase `json:"phases"`
	UnaddressedGaps []Gap   `json:"unaddressedGaps"`
}

// Planner builds a roadmap over registry snapshots.
type Planner struct {
	challenges *registry.ChallengeRegistry
	solutions  *registry.SolutionRegistry
	resolver   *xref.Resolver
	scorer     *scoring.Scorer
	stage      Stage
}

// NewPlanner creates a planner in the UNPLANNED stage.
func NewPlanner(challenges *registry.ChallengeRegistry, solutions *registry.SolutionRegistry) *Planner {
	return &Planner{
		challenges: challenges,
		solutions:  solutions,
		resolver:   xref.NewResolver(challenges, solutions),
		scorer:     scoring.NewScorer(challenges, solutions),
		stage:      StageUnplanned,
	}
}

// Stage returns the planner's current lifecycle stage.
func (p *Planner) Stage() Stage {
	return p.stage
}

// assignment records which solutions were selected for which challenge.
// startCoverage is the effectiveness contributed by solutions already
// assigned to higher-ranked challenges that also address this one.
type assignment struct {
	challengeID   string
	impact        float64
	startCoverage float64
	solutions     []catalog.Solution
}

// Plan ranks challenges, greedily assigns solutions, and buckets them into
// phases, moving the planner UNPLANNED -> PHASED -> FINALIZED.
func (p *Planner) Plan() (*Roadmap, error) {
	if p.stage == StageFinalized {
		return nil, fmt.Errorf("planner already finalized; create a new planner to re-plan")
	}

	ranked := p.scorer.RankedChallenges()
	assignments, gaps := p.assign(ranked)
	p.stage = StagePhased

	phases := p.bucket(assignments)
	p.stage = StageFinalized

	return &Roadmap{
		Stage:           p.stage,
		Phases:          phases,
		UnaddressedGaps: gaps,
	}, nil
}

// assign walks challenges in rank order, selecting for each the minimal set
// of still-unassigned solutions that closes its coverage gap, preferring
// higher effectiveness/timeline ratio, then lower timeline, then id.
// Solutions already assigned to a higher-ranked challenge still count
// toward the starting coverage of later challenges they address.
func (p *Planner) assign(ranked []scoring.ChallengeScore) ([]assignment, []Gap) {
	assigned := make(map[string]bool)
	assignments := make([]assignment, 0, len(ranked))
	gaps := make([]Gap, 0)

	for _, cs := range ranked {
		candidateIDs := p.resolver.SolutionsForChallenge(cs.ChallengeID)
		if len(candidateIDs) == 0 {
			c, err := p.challenges.Get(cs.ChallengeID)
			if err != nil {
				continue
			}
			gaps = append(gaps, Gap{
				ChallengeID: cs.ChallengeID,
				ImpactScore: cs.ImpactScore,
				Severity:    string(c.Severity),
			})
			continue
		}

		coverage := 0.0
		candidates := make([]catalog.Solution, 0, len(candidateIDs))
		for _, id := range candidateIDs {
			sol, err := p.solutions.Get(id)
			if err != nil {
				continue
			}
			if assigned[id] {
				coverage += sol.Effectiveness
				continue
			}
			candidates = append(candidates, sol)
		}

		sort.Slice(candidates, func(i, j int) bool {
			ri := candidates[i].Effectiveness / float64(candidates[i].TimelineMonths)
			rj := candidates[j].Effectiveness / float64(candidates[j].TimelineMonths)
			if ri != rj {
				return ri > rj
			}
			if candidates[i].TimelineMonths != candidates[j].TimelineMonths {
				return candidates[i].TimelineMonths < candidates[j].TimelineMonths
			}
			return candidates[i].ID < candidates[j].ID
		})

		startCoverage := coverage
		chosen := make([]catalog.Solution, 0)
		for _, sol := range candidates {
			if coverage >= scoring.CoverageTarget {
				break
			}
			chosen = append(chosen, sol)
			assigned[sol.ID] = true
			coverage += sol.Effectiveness
		}

		if len(chosen) > 0 {
			assignments = append(assignments, assignment{
				challengeID:   cs.ChallengeID,
				impact:        cs.ImpactScore,
				startCoverage: startCoverage,
				solutions:     chosen,
			})
		}
	}

	return assignments, gaps
}

// bucket partitions assigned solutions into phase windows by timeline; each
// solution lands in the earliest window containing its timeline. Items keep
// challenge rank order; solution ids within an item sort by ascending
// timeline, then id.
func (p *Planner) bucket(assignments []assignment) []Phase {
	windows := append([]window{}, phaseWindows...)
	windows = append(windows, window{label: overflowLabel, min: phaseWindows[len(phaseWindows)-1].max + 1, max: int(^uint(0) >> 1)})

	phases := make([]Phase, 0, len(windows))
	for _, w := range windows {
		items := make([]PhaseItem, 0)
		for _, a := range assignments {
			inWindow := make([]catalog.Solution, 0)
			cumulative := a.startCoverage
			for _, sol := range a.solutions {
				if sol.TimelineMonths <= w.max {
					cumulative += sol.Effectiveness
				}
				if sol.TimelineMonths >= w.min && sol.TimelineMonths <= w.max {
					inWindow = append(inWindow, sol)
				}
			}
			if len(inWindow) == 0 {
				continue
			}
			sort.Slice(inWindow, func(i, j int) bool {
				if inWindow[i].TimelineMonths != inWindow[j].TimelineMonths {
					return inWindow[i].TimelineMonths < inWindow[j].TimelineMonths
				}
				return inWindow[i].ID < inWindow[j].ID
			})
			ids := make([]string, 0, len(inWindow))
			for _, sol := range inWindow {
				ids = append(ids, sol.ID)
			}
			items = append(items, PhaseItem{
				ChallengeID:        a.challengeID,
				ImpactScore:        a.impact,
				SolutionIDs:        ids,
				CumulativeCoverage: cumulative,
			})
		}
		if len(items) > 0 {
			phases = append(phases, Phase{Window: w.label, Items: items})
		}
	}

	return phases
}
