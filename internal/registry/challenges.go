package registry

import (
	"aiswe/internal/catalog"
	"aiswe/internal/errors"
)

// ChallengeRegistry stores registered challenges in registration order.
type ChallengeRegistry struct {
	byID   map[string]catalog.Challenge
	order  []string
	closed bool
}

// NewChallengeRegistry creates an empty challenge registry.
func NewChallengeRegistry() *ChallengeRegistry {
	return &ChallengeRegistry{byID: make(map[string]catalog.Challenge)}
}

// Register validates and stores a challenge. Related ids must already be
// registered; self-references are rejected. The registry is unchanged when
// an error is returned.
func (r *ChallengeRegistry) Register(c catalog.Challenge) error {
	if r.closed {
		return errors.NewRegistrationClosed("challenge")
	}
	if c.ID == "" {
		return errors.NewInvalidField(c.ID, "id", nil)
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.NewDuplicateIdentifier("challenge", c.ID)
	}
	if !c.Severity.Valid() {
		return errors.NewInvalidField(c.ID, "severity", nil)
	}
	for _, cat := range c.AffectedCategories {
		if !cat.Valid() {
			return errors.NewInvalidField(c.ID, "affected_categories", nil)
		}
	}
	for _, related := range c.RelatedChallenges {
		if related == c.ID {
			return errors.NewInvalidReference(c.ID, "related_challenges", related)
		}
		if _, known := r.byID[related]; !known {
			return errors.NewInvalidReference(c.ID, "related_challenges", related)
		}
	}

	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

// Get returns the challenge with the given id.
func (r *ChallengeRegistry) Get(id string) (catalog.Challenge, error) {
	c, ok := r.byID[id]
	if !ok {
		return catalog.Challenge{}, errors.NewNotFound("challenge", id)
	}
	return c, nil
}

// Has reports whether the id is registered.
func (r *ChallengeRegistry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// ListAll returns all challenges in registration order.
func (r *ChallengeRegistry) ListAll() []catalog.Challenge {
	challenges := make([]catalog.Challenge, 0, len(r.order))
	for _, id := range r.order {
		challenges = append(challenges, r.byID[id])
	}
	return challenges
}

// FilterBySeverity returns challenges with the given severity, in
// registration order.
func (r *ChallengeRegistry) FilterBySeverity(sev catalog.Severity) []catalog.Challenge {
	matched := make([]catalog.Challenge, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.Severity == sev {
			matched = append(matched, c)
		}
	}
	return matched
}

// Close freezes the registry.
func (r *ChallengeRegistry) Close() {
	r.closed = true
}

// Len returns the number of registered challenges.
func (r *ChallengeRegistry) Len() int {
	return len(r.order)
}
