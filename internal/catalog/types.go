// Package catalog defines the immutable value types for the AI-SWE readiness
// catalog: tasks, the challenges that block them, and candidate solutions.
// Entities are plain values; all validation happens at registration time.
package catalog

import "fmt"

// TaskCategory classifies an AI-SWE task into one of six fixed categories.
type TaskCategory string

const (
	CodeGeneration      TaskCategory = "code_generation"
	CodeTransformation  TaskCategory = "code_transformation"
	TestingAnalysis     TaskCategory = "testing_analysis"
	SoftwareMaintenance TaskCategory = "software_maintenance"
	ScaffoldingMetacode TaskCategory = "scaffolding_metacode"
	FormalVerification  TaskCategory = "formal_verification"
)

// TaskCategories lists all task categories in canonical order.
var TaskCategories = []TaskCategory{
	CodeGeneration,
	CodeTransformation,
	TestingAnalysis,
	SoftwareMaintenance,
	ScaffoldingMetacode,
	FormalVerification,
}

// Valid reports whether the category is one of the six known values.
func (c TaskCategory) Valid() bool {
	for _, known := range TaskCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseTaskCategory converts a string into a TaskCategory.
func ParseTaskCategory(s string) (TaskCategory, error) {
	c := TaskCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown task category: %q", s)
	}
	return c, nil
}

// Scope measures the extent of codebase changes a task involves.
type Scope string

const (
	FunctionLevel Scope = "function"
	UnitLevel     Scope = "unit"
	ProjectLevel  Scope = "project"
)

// Valid reports whether the scope is a known value.
func (s Scope) Valid() bool {
	return s == FunctionLevel || s == UnitLevel || s == ProjectLevel
}

// ParseScope converts a string into a Scope.
func ParseScope(s string) (Scope, error) {
	v := Scope(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown scope: %q", s)
	}
	return v, nil
}

// Level is a shared three-step ordinal used for logical complexity,
// human-intervention autonomy, and solution feasibility.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Valid reports whether the level is a known value.
func (l Level) Valid() bool {
	return l == Low || l == Medium || l == High
}

// ParseLevel converts a string into a Level.
func ParseLevel(s string) (Level, error) {
	v := Level(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown level: %q", s)
	}
	return v, nil
}

// FeasibilityWeight maps a feasibility level to a multiplier used when
// ranking solutions by feasibility-weighted effectiveness.
func (l Level) FeasibilityWeight() float64 {
	switch l {
	case High:
		return 1.0
	case Medium:
		return 0.7
	default:
		return 0.4
	}
}

// Severity is the ordinal urgency of a challenge, totally ordered
// Low < Medium < High < Critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether the severity is a known value.
func (s Severity) Valid() bool {
	return s.Rank() != 0
}

// Rank returns the severity's position in the total order (1..4), or 0 for
// unknown values. Also used directly as the impact-score weight.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	v := Severity(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown severity: %q", s)
	}
	return v, nil
}

// SolutionCategory classifies a solution pathway.
type SolutionCategory string

const (
	DataCollection       SolutionCategory = "data_collection"
	Training             SolutionCategory = "training"
	Inference            SolutionCategory = "inference"
	FrameworkIntegration SolutionCategory = "framework_integration"
)

// SolutionCategories lists all solution categories in canonical order.
var SolutionCategories = []SolutionCategory{
	DataCollection,
	Training,
	Inference,
	FrameworkIntegration,
}

// Valid reports whether the category is a known value.
func (c SolutionCategory) Valid() bool {
	for _, known := range SolutionCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseSolutionCategory converts a string into a SolutionCategory.
func ParseSolutionCategory(s string) (SolutionCategory, error) {
	c := SolutionCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown solution category: %q", s)
	}
	return c, nil
}

// Task is a single AI-SWE task, immutable after registration.
type Task struct {
	ID           string       `json:"id" yaml:"id" toml:"id"`
	Name         string       `json:"name" yaml:"name" toml:"name"`
	Category     TaskCategory `json:"category" yaml:"category" toml:"category"`
	Scope        Scope        `json:"scope" yaml:"scope" toml:"scope"`
	Complexity   Level        `json:"complexity" yaml:"complexity" toml:"complexity"`
	Intervention Level        `json:"intervention" yaml:"intervention" toml:"intervention"`
	Description  string       `json:"description" yaml:"description" toml:"description"`
}

// Challenge is a blocking problem for one or more task categories.
// RelatedChallenges holds identifiers registered earlier; the relation is
// treated as undirected when the graph is traversed.
type Challenge struct {
	ID                 string         `json:"id" yaml:"id" toml:"id"`
	Name               string         `json:"name" yaml:"name" toml:"name"`
	Severity           Severity       `json:"severity" yaml:"severity" toml:"severity"`
	AffectedCategories []TaskCategory `json:"affectedCategories" yaml:"affected_categories" toml:"affected_categories"`
	RelatedChallenges  []string       `json:"relatedChallenges,omitempty" yaml:"related_challenges" toml:"related_challenges"`
	Description        string         `json:"description" yaml:"description" toml:"description"`
}

// Solution is a candidate approach addressing one or more challenges.
type Solution struct {
	ID                  string           `json:"id" yaml:"id" toml:"id"`
	Name                string           `json:"name" yaml:"name" toml:"name"`
	Category            SolutionCategory `json:"category" yaml:"category" toml:"category"`
	Feasibility         Level            `json:"feasibility" yaml:"feasibility" toml:"feasibility"`
	TimelineMonths      int              `json:"timelineMonths" yaml:"timeline_months" toml:"timeline_months"`
	AddressedChallenges []string         `json:"addressedChallenges" yaml:"addressed_challenges" toml:"addressed_challenges"`
	Effectiveness       float64          `json:"effectiveness" yaml:"effectiveness" toml:"effectiveness"`
	Description         string           `json:"description" yaml:"description" toml:"description"`
}
