package roadmap

import (
	"reflect"
	"testing"

	"aiswe/internal/catalog"
	"aiswe/internal/registry"
)

func newRegistries(t *testing.T) (*registry.ChallengeRegistry, *registry.SolutionRegistry) {
	t.Helper()
	challenges := registry.NewChallengeRegistry()
	solutions := registry.NewSolutionRegistry(challenges)
	return challenges, solutions
}

func register(t *testing.T, challenges *registry.ChallengeRegistry, solutions *registry.SolutionRegistry,
	cs []catalog.Challenge, ss []catalog.Solution) {
	t.Helper()
	for _, c := range cs {
		if err := challenges.Register(c); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", c.ID, err)
		}
	}
	for _, s := range ss {
		if err := solutions.Register(s); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", s.ID, err)
		}
	}
}

func TestPlannerLifecycle(t *testing.T) {
	challenges, solutions := newRegistries(t)
	p := NewPlanner(challenges, solutions)

	if p.Stage() != StageUnplanned {
		t.Errorf("Stage() = %v before planning, want %v", p.Stage(), StageUnplanned)
	}

	plan, err := p.Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	if p.Stage() != StageFinalized {
		t.Errorf("Stage() = %v after planning, want %v", p.Stage(), StageFinalized)
	}
	if plan.Stage != StageFinalized {
		t.Errorf("plan.Stage = %v, want %v", plan.Stage, StageFinalized)
	}

	if _, err := p.Plan(); err == nil {
		t.Error("second Plan() on finalized planner expected error, got nil")
	}
}

func TestPlanEmptyCatalog(t *testing.T) {
	challenges, solutions := newRegistries(t)
	plan, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	if len(plan.Phases) != 0 {
		t.Errorf("Plan() on empty catalog produced %d phases, want 0", len(plan.Phases))
	}
	if len(plan.UnaddressedGaps) != 0 {
		t.Errorf("Plan() on empty catalog produced %d gaps, want 0", len(plan.UnaddressedGaps))
	}
}

func TestPlanPhaseOrdering(t *testing.T) {
	challenges, solutions := newRegistries(t)
	register(t, challenges, solutions,
		[]catalog.Challenge{{
			ID: "eval-bench", Name: "Evaluation benchmarks",
			Severity: catalog.SeverityCritical,
			AffectedCategories: []catalog.TaskCategory{
				catalog.CodeGeneration, catalog.TestingAnalysis,
			},
		}},
		[]catalog.Solution{
			{ID: "contam-detect", Category: catalog.DataCollection, Feasibility: catalog.High,
				TimelineMonths: 3, AddressedChallenges: []string{"eval-bench"}, Effectiveness: 0.8},
			{ID: "manual-review", Category: catalog.Inference, Feasibility: catalog.Medium,
				TimelineMonths: 4, AddressedChallenges: []string{"eval-bench"}, Effectiveness: 0.3},
		})

	plan, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	if len(plan.Phases) != 1 {
		t.Fatalf("Plan() produced %d phases, want 1", len(plan.Phases))
	}
	phase := plan.Phases[0]
	if phase.Window != "0-6 months" {
		t.Errorf("phase.Window = %q, want %q", phase.Window, "0-6 months")
	}
	if len(phase.Items) != 1 {
		t.Fatalf("phase has %d items, want 1", len(phase.Items))
	}
	item := phase.Items[0]
	if item.ChallengeID != "eval-bench" {
		t.Errorf("item.ChallengeID = %q, want eval-bench", item.ChallengeID)
	}
	// Solutions within an item are ordered by ascending timeline.
	want := []string{"contam-detect", "manual-review"}
	if !reflect.DeepEqual(item.SolutionIDs, want) {
		t.Errorf("item.SolutionIDs = %v, want %v", item.SolutionIDs, want)
	}
	if item.CumulativeCoverage < 1.0 {
		t.Errorf("item.CumulativeCoverage = %v, want >= 1.0", item.CumulativeCoverage)
	}

	// Fully covered: no gaps.
	if len(plan.UnaddressedGaps) != 0 {
		t.Errorf("Plan() produced %d gaps, want 0", len(plan.UnaddressedGaps))
	}
}

func TestPlanUnaddressedGaps(t *testing.T) {
	challenges, solutions := newRegistries(t)
	register(t, challenges, solutions,
		[]catalog.Challenge{
			{ID: "orphan", Name: "Orphan", Severity: catalog.SeverityCritical,
				AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration}},
			{ID: "covered", Name: "Covered", Severity: catalog.SeverityHigh,
				AffectedCategories: []catalog.TaskCategory{catalog.TestingAnalysis}},
		},
		[]catalog.Solution{
			{ID: "s1", Category: catalog.Training, Feasibility: catalog.High,
				TimelineMonths: 6, AddressedChallenges: []string{"covered"}, Effectiveness: 1.0},
		})

	plan, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	if len(plan.UnaddressedGaps) != 1 {
		t.Fatalf("Plan() produced %d gaps, want 1", len(plan.UnaddressedGaps))
	}
	gap := plan.UnaddressedGaps[0]
	if gap.ChallengeID != "orphan" {
		t.Errorf("gap.ChallengeID = %q, want orphan", gap.ChallengeID)
	}
	if gap.Severity != string(catalog.SeverityCritical) {
		t.Errorf("gap.Severity = %q, want critical", gap.Severity)
	}
}

func TestPlanOverflowWindow(t *testing.T) {
	challenges, solutions := newRegistries(t)
	register(t, challenges, solutions,
		[]catalog.Challenge{{ID: "deep", Name: "Deep", Severity: catalog.SeverityHigh,
			AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration}}},
		[]catalog.Solution{
			{ID: "long-haul", Category: catalog.Training, Feasibility: catalog.Low,
				TimelineMonths: 30, AddressedChallenges: []string{"deep"}, Effectiveness: 0.9},
		})

	plan, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	if len(plan.Phases) != 1 {
		t.Fatalf("Plan() produced %d phases, want 1", len(plan.Phases))
	}
	if plan.Phases[0].Window != "25+ months" {
		t.Errorf("phase.Window = %q, want %q", plan.Phases[0].Window, "25+ months")
	}
}

func TestPlanSharedSolutionCountsOnce(t *testing.T) {
	challenges, solutions := newRegistries(t)
	// "shared" addresses both challenges. It is assigned to the
	// higher-impact one and only counts toward the other's starting
	// coverage.
	register(t, challenges, solutions,
		[]catalog.Challenge{
			{ID: "major", Name: "Major", Severity: catalog.SeverityCritical,
				AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration, catalog.TestingAnalysis}},
			{ID: "minor", Name: "Minor", Severity: catalog.SeverityHigh,
				AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration}},
		},
		[]catalog.Solution{
			{ID: "shared", Category: catalog.Training, Feasibility: catalog.High,
				TimelineMonths: 6, AddressedChallenges: []string{"major", "minor"}, Effectiveness: 1.0},
		})

	plan, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	assignedTo := make(map[string][]string)
	for _, phase := range plan.Phases {
		for _, item := range phase.Items {
			assignedTo[item.ChallengeID] = append(assignedTo[item.ChallengeID], item.SolutionIDs...)
		}
	}
	if !reflect.DeepEqual(assignedTo["major"], []string{"shared"}) {
		t.Errorf("major assigned %v, want [shared]", assignedTo["major"])
	}
	if len(assignedTo["minor"]) != 0 {
		t.Errorf("minor assigned %v, want none (already covered by shared)", assignedTo["minor"])
	}
	// Covered through the shared solution: not an unaddressed gap.
	if len(plan.UnaddressedGaps) != 0 {
		t.Errorf("Plan() produced %d gaps, want 0", len(plan.UnaddressedGaps))
	}
}

func TestPlanCumulativeCoverageIncludesSharedSolutions(t *testing.T) {
	challenges, solutions := newRegistries(t)
	// "shared" is assigned to the higher-impact challenge but still
	// contributes to the lower-impact one's cumulative coverage.
	register(t, challenges, solutions,
		[]catalog.Challenge{
			{ID: "major", Name: "Major", Severity: catalog.SeverityCritical,
				AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration, catalog.TestingAnalysis}},
			{ID: "minor", Name: "Minor", Severity: catalog.SeverityHigh,
				AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration}},
		},
		[]catalog.Solution{
			{ID: "shared", Category: catalog.Training, Feasibility: catalog.High,
				TimelineMonths: 6, AddressedChallenges: []string{"major", "minor"}, Effectiveness: 0.5},
			{ID: "own", Category: catalog.Inference, Feasibility: catalog.Medium,
				TimelineMonths: 6, AddressedChallenges: []string{"minor"}, Effectiveness: 0.25},
		})

	plan, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	if len(plan.Phases) != 1 {
		t.Fatalf("Plan() produced %d phases, want 1", len(plan.Phases))
	}
	items := make(map[string]PhaseItem)
	for _, item := range plan.Phases[0].Items {
		items[item.ChallengeID] = item
	}

	major, ok := items["major"]
	if !ok {
		t.Fatal("phase missing item for major")
	}
	if major.CumulativeCoverage != 0.5 {
		t.Errorf("major.CumulativeCoverage = %v, want 0.5", major.CumulativeCoverage)
	}

	minor, ok := items["minor"]
	if !ok {
		t.Fatal("phase missing item for minor")
	}
	if !reflect.DeepEqual(minor.SolutionIDs, []string{"own"}) {
		t.Errorf("minor.SolutionIDs = %v, want [own]", minor.SolutionIDs)
	}
	if minor.CumulativeCoverage != 0.75 {
		t.Errorf("minor.CumulativeCoverage = %v, want 0.75 (shared 0.5 + own 0.25)", minor.CumulativeCoverage)
	}
}

func TestPlanDeterministic(t *testing.T) {
	challenges, solutions := newRegistries(t)
	register(t, challenges, solutions,
		[]catalog.Challenge{
			{ID: "c1", Name: "C1", Severity: catalog.SeverityCritical,
				AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration}},
			{ID: "c2", Name: "C2", Severity: catalog.SeverityHigh,
				AffectedCategories: []catalog.TaskCategory{catalog.TestingAnalysis}},
		},
		[]catalog.Solution{
			{ID: "s1", Category: catalog.Training, Feasibility: catalog.High,
				TimelineMonths: 5, AddressedChallenges: []string{"c1"}, Effectiveness: 0.6},
			{ID: "s2", Category: catalog.Inference, Feasibility: catalog.Medium,
				TimelineMonths: 10, AddressedChallenges: []string{"c1", "c2"}, Effectiveness: 0.7},
			{ID: "s3", Category: catalog.DataCollection, Feasibility: catalog.Low,
				TimelineMonths: 20, AddressedChallenges: []string{"c2"}, Effectiveness: 0.5},
		})

	first, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("first Plan() unexpected error: %v", err)
	}
	second, err := NewPlanner(challenges, solutions).Plan()
	if err != nil {
		t.Fatalf("second Plan() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two plans over an unchanged catalog differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
