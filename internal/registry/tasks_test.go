package registry

import (
	"testing"

	"aiswe/internal/catalog"
	"aiswe/internal/errors"
)

func validTask(id string) catalog.Task {
	return catalog.Task{
		ID:           id,
		Name:         "Task " + id,
		Category:     catalog.CodeGeneration,
		Scope:        catalog.FunctionLevel,
		Complexity:   catalog.Low,
		Intervention: catalog.Low,
	}
}

func TestTaskRegisterAndGet(t *testing.T) {
	r := NewTaskRegistry()
	if err := r.Register(validTask("t1")); err != nil {
		t.Fatalf("Register(t1) unexpected error: %v", err)
	}

	got, err := r.Get("t1")
	if err != nil {
		t.Fatalf("Get(t1) unexpected error: %v", err)
	}
	if got.ID != "t1" {
		t.Errorf("Get(t1).ID = %q, want %q", got.ID, "t1")
	}

	if _, err := r.Get("missing"); errors.CodeOf(err) != errors.NotFound {
		t.Errorf("Get(missing) code = %v, want %v", errors.CodeOf(err), errors.NotFound)
	}
}

func TestTaskRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*catalog.Task)
		wantCode errors.ErrorCode
	}{
		{"empty id", func(task *catalog.Task) { task.ID = "" }, errors.InvalidField},
		{"bad category", func(task *catalog.Task) { task.Category = "poetry" }, errors.InvalidField},
		{"bad scope", func(task *catalog.Task) { task.Scope = "galaxy" }, errors.InvalidField},
		{"bad complexity", func(task *catalog.Task) { task.Complexity = "extreme" }, errors.InvalidField},
		{"bad intervention", func(task *catalog.Task) { task.Intervention = "none" }, errors.InvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTaskRegistry()
			task := validTask("t1")
			tt.mutate(&task)
			err := r.Register(task)
			if errors.CodeOf(err) != tt.wantCode {
				t.Errorf("Register code = %v, want %v", errors.CodeOf(err), tt.wantCode)
			}
			if r.Len() != 0 {
				t.Errorf("registry size = %d after failed registration, want 0", r.Len())
			}
		})
	}
}

func TestTaskRegisterDuplicate(t *testing.T) {
	r := NewTaskRegistry()
	if err := r.Register(validTask("t1")); err != nil {
		t.Fatalf("Register(t1) unexpected error: %v", err)
	}
	err := r.Register(validTask("t1"))
	if errors.CodeOf(err) != errors.DuplicateIdentifier {
		t.Errorf("duplicate Register code = %v, want %v", errors.CodeOf(err), errors.DuplicateIdentifier)
	}
	if r.Len() != 1 {
		t.Errorf("registry size = %d, want 1", r.Len())
	}
}

func TestTaskRegisterAfterClose(t *testing.T) {
	r := NewTaskRegistry()
	r.Close()
	err := r.Register(validTask("t1"))
	if errors.CodeOf(err) != errors.RegistrationClosed {
		t.Errorf("Register after Close code = %v, want %v", errors.CodeOf(err), errors.RegistrationClosed)
	}
}

func TestTaskListAllPreservesOrder(t *testing.T) {
	r := NewTaskRegistry()
	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		if err := r.Register(validTask(id)); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", id, err)
		}
	}

	got := r.ListAll()
	if len(got) != len(ids) {
		t.Fatalf("ListAll returned %d tasks, want %d", len(got), len(ids))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("ListAll[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestTaskFilterConjunction(t *testing.T) {
	r := NewTaskRegistry()
	a := validTask("a")
	a.Category = catalog.CodeGeneration
	a.Complexity = catalog.High
	b := validTask("b")
	b.Category = catalog.CodeGeneration
	b.Complexity = catalog.Low
	c := validTask("c")
	c.Category = catalog.TestingAnalysis
	c.Complexity = catalog.High
	for _, task := range []catalog.Task{a, b, c} {
		if err := r.Register(task); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", task.ID, err)
		}
	}

	tests := []struct {
		name   string
		filter TaskFilter
		want   []string
	}{
		{"no filter returns all", TaskFilter{}, []string{"a", "b", "c"}},
		{"category only", TaskFilter{Category: catalog.CodeGeneration}, []string{"a", "b"}},
		{"complexity only", TaskFilter{Complexity: catalog.High}, []string{"a", "c"}},
		{"category and complexity", TaskFilter{Category: catalog.CodeGeneration, Complexity: catalog.High}, []string{"a"}},
		{"no match", TaskFilter{Category: catalog.FormalVerification}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Filter(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter returned %d tasks, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Filter[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}
