package claudecmd

import (
	"io"
	"testing"

	"aiswe/internal/config"
	"aiswe/internal/errors"
	"aiswe/internal/logging"
	"aiswe/internal/query"
)

func newTestEngine(t *testing.T) *query.Engine {
	t.Helper()
	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
	engine, err := query.NewEngine(config.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewEngine unexpected error: %v", err)
	}
	return engine
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		argv     []string
		want     Args
		wantCode errors.ErrorCode
	}{
		{"analyze-task", "analyze-task", []string{"t1"}, AnalyzeTaskArgs{TaskID: "t1"}, ""},
		{"analyze-task missing arg", "analyze-task", nil, nil, errors.InvalidField},
		{"analyze-task extra args", "analyze-task", []string{"a", "b"}, nil, errors.InvalidField},
		{"assess-challenges bare", "assess-challenges", nil, AssessChallengesArgs{}, ""},
		{"assess-challenges scoped", "assess-challenges", []string{"code_generation"}, AssessChallengesArgs{Category: "code_generation"}, ""},
		{"suggest-solutions", "suggest-solutions", []string{"c1"}, SuggestSolutionsArgs{ChallengeID: "c1"}, ""},
		{"quick-wins default", "quick-wins", nil, QuickWinsArgs{}, ""},
		{"quick-wins explicit", "quick-wins", []string{"6"}, QuickWinsArgs{MaxMonths: 6}, ""},
		{"quick-wins non-numeric", "quick-wins", []string{"soon"}, nil, errors.InvalidField},
		{"quick-wins negative", "quick-wins", []string{"-2"}, nil, errors.InvalidField},
		{"roadmap", "roadmap", nil, RoadmapArgs{}, ""},
		{"roadmap extra args", "roadmap", []string{"now"}, nil, errors.InvalidField},
		{"readiness", "readiness", nil, ReadinessArgs{}, ""},
		{"unknown command", "write-my-code", nil, nil, errors.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.command, tt.argv)
			if tt.wantCode != "" {
				if errors.CodeOf(err) != tt.wantCode {
					t.Fatalf("Parse(%s) code = %v, want %v", tt.command, errors.CodeOf(err), tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%s) unexpected error: %v", tt.command, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%s) = %#v, want %#v", tt.command, got, tt.want)
			}
		})
	}
}

func TestExecuteDispatch(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name    string
		command string
		argv    []string
	}{
		{"analyze-task", "analyze-task", []string{"function-completion"}},
		{"assess-challenges", "assess-challenges", nil},
		{"suggest-solutions", "suggest-solutions", []string{"eval-benchmarks"}},
		{"quick-wins uses configured default", "quick-wins", nil},
		{"roadmap", "roadmap", nil},
		{"readiness", "readiness", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Execute(engine, tt.command, tt.argv)
			if err != nil {
				t.Fatalf("Execute(%s) unexpected error: %v", tt.command, err)
			}
			if resp == nil {
				t.Errorf("Execute(%s) returned nil response", tt.command)
			}
		})
	}
}

func TestExecuteUnknownEntity(t *testing.T) {
	engine := newTestEngine(t)

	_, err := Execute(engine, "analyze-task", []string{"ghost"})
	if errors.CodeOf(err) != errors.NotFound {
		t.Errorf("Execute(analyze-task ghost) code = %v, want %v", errors.CodeOf(err), errors.NotFound)
	}
}

func TestListAndHelp(t *testing.T) {
	commands := List()
	if len(commands) != len(handlers) {
		t.Errorf("List returned %d commands, want %d", len(commands), len(handlers))
	}

	for _, c := range commands {
		entry, err := Help(string(c.Kind))
		if err != nil {
			t.Errorf("Help(%s) unexpected error: %v", c.Kind, err)
			continue
		}
		if entry.Usage == "" || entry.Summary == "" {
			t.Errorf("Help(%s) returned incomplete entry %+v", c.Kind, entry)
		}
	}

	if _, err := Help("nope"); errors.CodeOf(err) != errors.NotFound {
		t.Errorf("Help(nope) code = %v, want %v", errors.CodeOf(err), errors.NotFound)
	}
}
