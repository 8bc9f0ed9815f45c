package query

import (
	"sort"
	"time"

	"aiswe/internal/catalog"
	"aiswe/internal/errors"
	"aiswe/internal/registry"
	"aiswe/internal/roadmap"
	"aiswe/internal/scoring"
)

// ListTasksOptions filters the task listing. Empty dimensions are
// unconstrained; string values are validated against the enums.
type ListTasksOptions struct {
	Category     string
	Scope        string
	Complexity   string
	Intervention string
}

// TaskListResponse contains the filtered task listing.
type TaskListResponse struct {
	Tasks      []catalog.Task `json:"tasks"`
	TotalCount int            `json:"totalCount"`
	Provenance *Provenance    `json:"provenance,omitempty"`
}

// ListTasks returns tasks matching every supplied filter dimension, in
// registration order.
func (e *Engine) ListTasks(opts ListTasksOptions) (*TaskListResponse, error) {
	start := time.Now()
	e.freeze()

	var filter registry.TaskFilter
	if opts.Category != "" {
		c, err := catalog.ParseTaskCategory(opts.Category)
		if err != nil {
			return nil, errors.NewInvalidField("", "category", err)
		}
		filter.Category = c
	}
	if opts.Scope != "" {
		s, err := catalog.ParseScope(opts.Scope)
		if err != nil {
			return nil, errors.NewInvalidField("", "scope", err)
		}
		filter.Scope = s
	}
	if opts.Complexity != "" {
		l, err := catalog.ParseLevel(opts.Complexity)
		if err != nil {
			return nil, errors.NewInvalidField("", "complexity", err)
		}
		filter.Complexity = l
	}
	if opts.Intervention != "" {
		l, err := catalog.ParseLevel(opts.Intervention)
		if err != nil {
			return nil, errors.NewInvalidField("", "intervention", err)
		}
		filter.Intervention = l
	}

	tasks := e.tasks.Filter(filter)
	return &TaskListResponse{
		Tasks:      tasks,
		TotalCount: len(tasks),
		Provenance: e.provenance(start),
	}, nil
}

// TaskEvaluationResponse joins one task with the challenges blocking its
// category, the solutions addressing them, and a derived readiness view.
type TaskEvaluationResponse struct {
	Task           catalog.Task             `json:"task"`
	Challenges     []scoring.ChallengeScore `json:"challenges"`
	Solutions      []catalog.Solution       `json:"solutions"`
	ReadinessScore float64                  `json:"readinessScore"`
	Recommendation string                   `json:"recommendation"`
	Provenance     *Provenance              `json:"provenance,omitempty"`
}

// EvaluateTask computes the readiness view for a single task.
func (e *Engine) EvaluateTask(id string) (*TaskEvaluationResponse, error) {
	start := time.Now()
	e.freeze()

	task, err := e.tasks.Get(id)
	if err != nil {
		return nil, err
	}

	challengeIDs := e.resolver.ChallengesForCategory(task.Category)
	challengeSet := make(map[string]bool, len(challengeIDs))
	for _, cid := range challengeIDs {
		challengeSet[cid] = true
	}

	scores := make([]scoring.ChallengeScore, 0, len(challengeIDs))
	for _, cs := range e.scorer.RankedChallenges() {
		if challengeSet[cs.ChallengeID] {
			scores = append(scores, cs)
		}
	}

	solutionSet := make(map[string]catalog.Solution)
	for _, cid := range challengeIDs {
		for _, sid := range e.resolver.SolutionsForChallenge(cid) {
			if _, seen := solutionSet[sid]; seen {
				continue
			}
			sol, err := e.solutions.Get(sid)
			if err != nil {
				return nil, err
			}
			solutionSet[sid] = sol
		}
	}
	solutions := make([]catalog.Solution, 0, len(solutionSet))
	for _, sol := range solutionSet {
		solutions = append(solutions, sol)
	}
	solutions = scoring.RankByFeasibility(solutions)

	readiness := taskReadiness(scores)
	return &TaskEvaluationResponse{
		Task:           task,
		Challenges:     scores,
		Solutions:      solutions,
		ReadinessScore: readiness,
		Recommendation: recommendationFor(readiness),
		Provenance:     e.provenance(start),
	}, nil
}

// taskReadiness is the impact-weighted mean of capped coverage over the
// task's challenges; an unchallenged task is fully ready.
func taskReadiness(scores []scoring.ChallengeScore) float64 {
	if len(scores) == 0 {
		return 1.0
	}
	weighted := 0.0
	totalImpact := 0.0
	for _, cs := range scores {
		cov := cs.Coverage
		if cov > scoring.CoverageTarget {
			cov = scoring.CoverageTarget
		}
		weighted += cov * cs.ImpactScore
		totalImpact += cs.ImpactScore
	}
	if totalImpact == 0 {
		return 1.0
	}
	return weighted / totalImpact
}

// recommendationFor maps a task readiness score to a fixed recommendation.
func recommendationFor(score float64) string {
	switch {
	case score > 0.8:
		return "HIGH CONFIDENCE: mature solutions cover this task's challenges"
	case score > 0.6:
		return "MEDIUM CONFIDENCE: challenges present but viable solutions exist"
	case score > 0.4:
		return "LOW CONFIDENCE: significant challenges, solutions still in development"
	default:
		return "RESEARCH NEEDED: major challenges without mature solutions"
	}
}

// ChallengeListResponse contains the challenge listing.
type ChallengeListResponse struct {
	Challenges []catalog.Challenge `json:"challenges"`
	TotalCount int                 `json:"totalCount"`
	Provenance *Provenance         `json:"provenance,omitempty"`
}

// ListChallenges returns challenges in registration order, optionally
// filtered by severity.
func (e *Engine) ListChallenges(severity string) (*ChallengeListResponse, error) {
	start := time.Now()
	e.freeze()

	var challenges []catalog.Challenge
	if severity == "" {
		challenges = e.challenges.ListAll()
	} else {
		sev, err := catalog.ParseSeverity(severity)
		if err != nil {
			return nil, errors.NewInvalidField("", "severity", err)
		}
		challenges = e.challenges.FilterBySeverity(sev)
	}

	return &ChallengeListResponse{
		Challenges: challenges,
		TotalCount: len(challenges),
		Provenance: e.provenance(start),
	}, nil
}

// RelatedChallengesResponse contains the transitive relation expansion.
type RelatedChallengesResponse struct {
	ChallengeID string              `json:"challengeId"`
	Depth       int                 `json:"depth"`
	Related     []catalog.Challenge `json:"related"`
	Provenance  *Provenance         `json:"provenance,omitempty"`
}

// RelatedChallenges expands the undirected relation graph up to depth hops.
func (e *Engine) RelatedChallenges(id string, depth int) (*RelatedChallengesResponse, error) {
	start := time.Now()
	e.freeze()

	ids, err := e.resolver.ExpandRelated(id, depth)
	if err != nil {
		return nil, err
	}
	related := make([]catalog.Challenge, 0, len(ids))
	for _, rid := range ids {
		c, err := e.challenges.Get(rid)
		if err != nil {
			return nil, err
		}
		related = append(related, c)
	}

	return &RelatedChallengesResponse{
		ChallengeID: id,
		Depth:       depth,
		Related:     related,
		Provenance:  e.provenance(start),
	}, nil
}

// ChallengeAnalysisResponse maps every analyzed challenge to its derived
// metrics.
type ChallengeAnalysisResponse struct {
	Category        string                            `json:"category,omitempty"`
	Ranked          []scoring.ChallengeScore          `json:"ranked"`
	ByID            map[string]scoring.ChallengeScore `json:"byId"`
	CoverageGaps    []string                          `json:"coverageGaps"`
	TotalChallenges int                               `json:"totalChallenges"`
	CoveredCount    int                               `json:"coveredCount"`
	Provenance      *Provenance                       `json:"provenance,omitempty"`
}

// AnalyzeChallenges scores registered challenges. A non-empty category
// restricts the analysis to challenges affecting that task category.
func (e *Engine) AnalyzeChallenges(category string) (*ChallengeAnalysisResponse, error) {
	start := time.Now()
	e.freeze()

	ranked := e.scorer.RankedChallenges()
	if category != "" {
		cat, err := catalog.ParseTaskCategory(category)
		if err != nil {
			return nil, errors.NewInvalidField("", "category", err)
		}
		affected := make(map[string]bool)
		for _, cid := range e.resolver.ChallengesForCategory(cat) {
			affected[cid] = true
		}
		filtered := ranked[:0]
		for _, cs := range ranked {
			if affected[cs.ChallengeID] {
				filtered = append(filtered, cs)
			}
		}
		ranked = filtered
	}
	byID := make(map[string]scoring.ChallengeScore, len(ranked))
	gaps := make([]string, 0)
	covered := 0
	for _, cs := range ranked {
		byID[cs.ChallengeID] = cs
		if cs.IsGap {
			gaps = append(gaps, cs.ChallengeID)
		}
		if cs.Coverage >= scoring.CoverageTarget {
			covered++
		}
	}
	sort.Strings(gaps)

	return &ChallengeAnalysisResponse{
		Category:        category,
		Ranked:          ranked,
		ByID:            byID,
		CoverageGaps:    gaps,
		TotalChallenges: len(ranked),
		CoveredCount:    covered,
		Provenance:      e.provenance(start),
	}, nil
}

// SolutionListResponse contains the solution listing, feasibility ranked.
type SolutionListResponse struct {
	Solutions  []catalog.Solution `json:"solutions"`
	TotalCount int                `json:"totalCount"`
	Provenance *Provenance        `json:"provenance,omitempty"`
}

// ListSolutions returns solutions ranked by feasibility-weighted
// effectiveness, optionally filtered by category.
func (e *Engine) ListSolutions(category string) (*SolutionListResponse, error) {
	start := time.Now()
	e.freeze()

	var solutions []catalog.Solution
	if category == "" {
		solutions = e.solutions.ListAll()
	} else {
		cat, err := catalog.ParseSolutionCategory(category)
		if err != nil {
			return nil, errors.NewInvalidField("", "category", err)
		}
		solutions = e.solutions.FilterByCategory(cat)
	}
	solutions = scoring.RankByFeasibility(solutions)

	return &SolutionListResponse{
		Solutions:  solutions,
		TotalCount: len(solutions),
		Provenance: e.provenance(start),
	}, nil
}

// ChallengeSolutionsResponse lists the solutions addressing one challenge.
type ChallengeSolutionsResponse struct {
	ChallengeID string             `json:"challengeId"`
	Coverage    float64            `json:"coverage"`
	Solutions   []catalog.Solution `json:"solutions"`
	Provenance  *Provenance        `json:"provenance,omitempty"`
}

// SolutionsForChallenge returns the solutions addressing a challenge,
// feasibility ranked, with the challenge's resulting coverage.
func (e *Engine) SolutionsForChallenge(id string) (*ChallengeSolutionsResponse, error) {
	start := time.Now()
	e.freeze()

	if _, err := e.challenges.Get(id); err != nil {
		return nil, err
	}
	ids := e.resolver.SolutionsForChallenge(id)
	solutions := make([]catalog.Solution, 0, len(ids))
	for _, sid := range ids {
		sol, err := e.solutions.Get(sid)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, sol)
	}

	return &ChallengeSolutionsResponse{
		ChallengeID: id,
		Coverage:    e.scorer.Coverage(id),
		Solutions:   scoring.RankByFeasibility(solutions),
		Provenance:  e.provenance(start),
	}, nil
}

// QuickWinsResponse contains solutions deployable within the window.
type QuickWinsResponse struct {
	MaxMonths  int                `json:"maxMonths"`
	Solutions  []catalog.Solution `json:"solutions"`
	Provenance *Provenance        `json:"provenance,omitempty"`
}

// QuickWins returns solutions with timeline at most maxMonths, sorted by
// descending effectiveness.
func (e *Engine) QuickWins(maxMonths int) (*QuickWinsResponse, error) {
	start := time.Now()
	e.freeze()

	return &QuickWinsResponse{
		MaxMonths:  maxMonths,
		Solutions:  e.scorer.QuickWins(maxMonths),
		Provenance: e.provenance(start),
	}, nil
}

// RoadmapResponse wraps the finalized roadmap.
type RoadmapResponse struct {
	Roadmap    *roadmap.Roadmap `json:"roadmap"`
	Provenance *Provenance      `json:"provenance,omitempty"`
}

// GenerateRoadmap plans a fresh roadmap over the frozen registries.
func (e *Engine) GenerateRoadmap() (*RoadmapResponse, error) {
	start := time.Now()
	e.freeze()

	planner := roadmap.NewPlanner(e.challenges, e.solutions)
	plan, err := planner.Plan()
	if err != nil {
		return nil, err
	}

	return &RoadmapResponse{
		Roadmap:    plan,
		Provenance: e.provenance(start),
	}, nil
}

// ReadinessResponse contains the aggregate readiness grade.
type ReadinessResponse struct {
	Score      float64       `json:"score"`
	Grade      scoring.Grade `json:"grade"`
	Provenance *Provenance   `json:"provenance,omitempty"`
}

// ReadinessGrade aggregates coverage-weighted impact into a letter grade.
// An empty challenge catalog grades F rather than failing.
func (e *Engine) ReadinessGrade() (*ReadinessResponse, error) {
	start := time.Now()
	e.freeze()

	return &ReadinessResponse{
		Score:      e.scorer.ReadinessScore(),
		Grade:      e.scorer.ReadinessGrade(),
		Provenance: e.provenance(start),
	}, nil
}
