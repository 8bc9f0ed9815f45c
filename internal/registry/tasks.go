// Package registry holds the in-memory stores for tasks, challenges, and
// solutions. Registries are populated once at startup and freeze at the
// first query; every query after that sees an immutable snapshot.
package registry

import (
	"aiswe/internal/catalog"
	"aiswe/internal/errors"
)

// TaskRegistry stores registered tasks in registration order.
type TaskRegistry struct {
	byID   map[string]catalog.Task
	order  []string
	closed bool
}

// NewTaskRegistry creates an empty task registry.
func NewTaskRegistry() *TaskRegistry {
	return &TaskRegistry{byID: make(map[string]catalog.Task)}
}

// Register validates and stores a task. The registry is unchanged when an
// error is returned.
func (r *TaskRegistry) Register(t catalog.Task) error {
	if r.closed {
		return errors.NewRegistrationClosed("task")
	}
	if t.ID == "" {
		return errors.NewInvalidField(t.ID, "id", nil)
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.NewDuplicateIdentifier("task", t.ID)
	}
	if !t.Category.Valid() {
		return errors.NewInvalidField(t.ID, "category", nil)
	}
	if !t.Scope.Valid() {
		return errors.NewInvalidField(t.ID, "scope", nil)
	}
	if !t.Complexity.Valid() {
		return errors.NewInvalidField(t.ID, "complexity", nil)
	}
	if !t.Intervention.Valid() {
		return errors.NewInvalidField(t.ID, "intervention", nil)
	}

	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// Get returns the task with the given id.
func (r *TaskRegistry) Get(id string) (catalog.Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return catalog.Task{}, errors.NewNotFound("task", id)
	}
	return t, nil
}

// ListAll returns all tasks in registration order.
func (r *TaskRegistry) ListAll() []catalog.Task {
	tasks := make([]catalog.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.byID[id])
	}
	return tasks
}

// TaskFilter selects tasks by any combination of dimensions. Zero-valued
// dimensions are unconstrained; supplied dimensions combine with AND.
type TaskFilter struct {
	Category     catalog.TaskCategory
	Scope        catalog.Scope
	Complexity   catalog.Level
	Intervention catalog.Level
}

// Filter returns the tasks matching every supplied dimension, in
// registration order.
func (r *TaskRegistry) Filter(f TaskFilter) []catalog.Task {
	matched := make([]catalog.Task, 0)
	for _, id := range r.order {
		t := r.byID[id]
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Scope != "" && t.Scope != f.Scope {
			continue
		}
		if f.Complexity != "" && t.Complexity != f.Complexity {
			continue
		}
		if f.Intervention != "" && t.Intervention != f.Intervention {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// Close freezes the registry; later Register calls fail with
// RegistrationClosed.
func (r *TaskRegistry) Close() {
	r.closed = true
}

// Len returns the number of registered tasks.
func (r *TaskRegistry) Len() int {
	return len(r.order)
}
