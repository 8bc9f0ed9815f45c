package registry

import (
	"aiswe/internal/catalog"
	"aiswe/internal/errors"
)

// SolutionRegistry stores registered solutions in registration order.
// Addressed-challenge references are validated against the challenge
// registry it was constructed with.
type SolutionRegistry struct {
	challenges *ChallengeRegistry
	byID       map[string]catalog.Solution
	order      []string
	closed     bool
}

// NewSolutionRegistry creates an empty solution registry validating
// references against challenges.
func NewSolutionRegistry(challenges *ChallengeRegistry) *SolutionRegistry {
	return &SolutionRegistry{
		challenges: challenges,
		byID:       make(map[string]catalog.Solution),
	}
}

// Register validates and stores a solution. The registry is unchanged when
// an error is returned.
func (r *SolutionRegistry) Register(s catalog.Solution) error {
	if r.closed {
		return errors.NewRegistrationClosed("solution")
	}
	if s.ID == "" {
		return errors.NewInvalidField(s.ID, "id", nil)
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.NewDuplicateIdentifier("solution", s.ID)
	}
	if !s.Category.Valid() {
		return errors.NewInvalidField(s.ID, "category", nil)
	}
	if !s.Feasibility.Valid() {
		return errors.NewInvalidField(s.ID, "feasibility", nil)
	}
	if s.TimelineMonths <= 0 {
		return errors.NewInvalidField(s.ID, "timeline_months", nil)
	}
	if s.Effectiveness < 0 || s.Effectiveness > 1 {
		return errors.NewInvalidField(s.ID, "effectiveness", nil)
	}
	for _, addressed := range s.AddressedChallenges {
		if !r.challenges.Has(addressed) {
			return errors.NewInvalidReference(s.ID, "addressed_challenges", addressed)
		}
	}

	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

// Get returns the solution with the given id.
func (r *SolutionRegistry) Get(id string) (catalog.Solution, error) {
	s, ok := r.byID[id]
	if !ok {
		return catalog.Solution{}, errors.NewNotFound("solution", id)
	}
	return s, nil
}

// ListAll returns all solutions in registration order.
func (r *SolutionRegistry) ListAll() []catalog.Solution {
	solutions := make([]catalog.Solution, 0, len(r.order))
	for _, id := range r.order {
		solutions = append(solutions, r.byID[id])
	}
	return solutions
}

// FilterByCategory returns solutions in the given category, in registration
// order.
func (r *SolutionRegistry) FilterByCategory(cat catalog.SolutionCategory) []catalog.Solution {
	matched := make([]catalog.Solution, 0)
	for _, id := range r.order {
		if s := r.byID[id]; s.Category == cat {
			matched = append(matched, s)
		}
	}
	return matched
}

// Close freezes the registry.
func (r *SolutionRegistry) Close() {
	r.closed = true
}

// Len returns the number of registered solutions.
func (r *SolutionRegistry) Len() int {
	return len(r.order)
}
