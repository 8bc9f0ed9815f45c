// Package claudecmd implements the named-command catalog: a fixed set of
// dispatchable commands, each with a typed argument struct and a handler
// that calls into the query engine. Dispatch is by an explicit handler map
// keyed on the command kind; there is no dynamic argument typing.
package claudecmd

import (
	"strconv"

	"aiswe/internal/errors"
	"aiswe/internal/query"
)

// Kind identifies a catalog command.
type Kind string

const (
	KindAnalyzeTask      Kind = "analyze-task"
	KindAssessChallenges Kind = "assess-challenges"
	KindSuggestSolutions Kind = "suggest-solutions"
	KindQuickWins        Kind = "quick-wins"
	KindRoadmap          Kind = "roadmap"
	KindReadiness        Kind = "readiness"
)

// Args is the closed set of command argument structs.
type Args interface {
	kind() Kind
}

// AnalyzeTaskArgs evaluates one task by id.
type AnalyzeTaskArgs struct {
	TaskID string
}

// AssessChallengesArgs analyzes challenges, optionally scoped to a task
// category.
type AssessChallengesArgs struct {
	Category string
}

// SuggestSolutionsArgs lists the solutions addressing one challenge.
type SuggestSolutionsArgs struct {
	ChallengeID string
}

// QuickWinsArgs lists quick wins. MaxMonths 0 means the configured default.
type QuickWinsArgs struct {
	MaxMonths int
}

// RoadmapArgs generates the phased roadmap.
type RoadmapArgs struct{}

// ReadinessArgs computes the readiness grade.
type ReadinessArgs struct{}

func (AnalyzeTaskArgs) kind() Kind      { return KindAnalyzeTask }
func (AssessChallengesArgs) kind() Kind { return KindAssessChallenges }
func (SuggestSolutionsArgs) kind() Kind { return KindSuggestSolutions }
func (QuickWinsArgs) kind() Kind        { return KindQuickWins }
func (RoadmapArgs) kind() Kind          { return KindRoadmap }
func (ReadinessArgs) kind() Kind        { return KindReadiness }

// Command describes one catalog entry.
type Command struct {
	Kind    Kind   `json:"kind"`
	Usage   string `json:"usage"`
	Summary string `json:"summary"`
}

// catalog is the fixed command set, in presentation order.
var commandCatalog = []Command{
	{KindAnalyzeTask, "analyze-task <task-id>", "Evaluate one task's challenges, solutions, and readiness"},
	{KindAssessChallenges, "assess-challenges [category]", "Rank challenges by impact, optionally scoped to a task category"},
	{KindSuggestSolutions, "suggest-solutions <challenge-id>", "List solutions addressing a challenge, feasibility ranked"},
	{KindQuickWins, "quick-wins [months]", "List solutions deployable within the window"},
	{KindRoadmap, "roadmap", "Generate the phased implementation roadmap"},
	{KindReadiness, "readiness", "Compute the aggregate readiness grade"},
}

type handler func(*query.Engine, Args) (interface{}, error)

var handlers = map[Kind]handler{
	KindAnalyzeTask: func(e *query.Engine, a Args) (interface{}, error) {
		return e.EvaluateTask(a.(AnalyzeTaskArgs).TaskID)
	},
	KindAssessChallenges: func(e *query.Engine, a Args) (interface{}, error) {
		return e.AnalyzeChallenges(a.(AssessChallengesArgs).Category)
	},
	KindSuggestSolutions: func(e *query.Engine, a Args) (interface{}, error) {
		return e.SolutionsForChallenge(a.(SuggestSolutionsArgs).ChallengeID)
	},
	KindQuickWins: func(e *query.Engine, a Args) (interface{}, error) {
		months := a.(QuickWinsArgs).MaxMonths
		if months <= 0 {
			months = e.QuickWinWindow()
		}
		return e.QuickWins(months)
	},
	KindRoadmap: func(e *query.Engine, a Args) (interface{}, error) {
		return e.GenerateRoadmap()
	},
	KindReadiness: func(e *query.Engine, a Args) (interface{}, error) {
		return e.ReadinessGrade()
	},
}

// List returns the command catalog in presentation order.
func List() []Command {
	out := make([]Command, len(commandCatalog))
	copy(out, commandCatalog)
	return out
}

// Help returns the catalog entry for a command name.
func Help(name string) (Command, error) {
	for _, c := range commandCatalog {
		if string(c.Kind) == name {
			return c, nil
		}
	}
	return Command{}, errors.NewNotFound("command", name)
}

// Parse converts a command name and raw arguments into the typed argument
// struct for that command. Unknown names fail with NotFound; malformed
// arguments fail with InvalidField.
func Parse(name string, argv []string) (Args, error) {
	switch Kind(name) {
	case KindAnalyzeTask:
		if len(argv) != 1 {
			return nil, errors.NewInvalidField(name, "args", errUsage(KindAnalyzeTask))
		}
		return AnalyzeTaskArgs{TaskID: argv[0]}, nil
	case KindAssessChallenges:
		switch len(argv) {
		case 0:
			return AssessChallengesArgs{}, nil
		case 1:
			return AssessChallengesArgs{Category: argv[0]}, nil
		}
		return nil, errors.NewInvalidField(name, "args", errUsage(KindAssessChallenges))
	case KindSuggestSolutions:
		if len(argv) != 1 {
			return nil, errors.NewInvalidField(name, "args", errUsage(KindSuggestSolutions))
		}
		return SuggestSolutionsArgs{ChallengeID: argv[0]}, nil
	case KindQuickWins:
		switch len(argv) {
		case 0:
			return QuickWinsArgs{}, nil
		case 1:
			months, err := strconv.Atoi(argv[0])
			if err != nil || months <= 0 {
				return nil, errors.NewInvalidField(name, "months", errUsage(KindQuickWins))
			}
			return QuickWinsArgs{MaxMonths: months}, nil
		}
		return nil, errors.NewInvalidField(name, "args", errUsage(KindQuickWins))
	case KindRoadmap:
		if len(argv) != 0 {
			return nil, errors.NewInvalidField(name, "args", errUsage(KindRoadmap))
		}
		return RoadmapArgs{}, nil
	case KindReadiness:
		if len(argv) != 0 {
			return nil, errors.NewInvalidField(name, "args", errUsage(KindReadiness))
		}
		return ReadinessArgs{}, nil
	}
	return nil, errors.NewNotFound("command", name)
}

// Execute parses and dispatches a command against the engine.
func Execute(e *query.Engine, name string, argv []string) (interface{}, error) {
	args, err := Parse(name, argv)
	if err != nil {
		return nil, err
	}
	return handlers[args.kind()](e, args)
}

type usageError struct {
	usage string
}

func (u usageError) Error() string {
	return "usage: " + u.usage
}

func errUsage(k Kind) error {
	for _, c := range commandCatalog {
		if c.Kind == k {
			return usageError{usage: c.Usage}
		}
	}
	return usageError{usage: string(k)}
}
