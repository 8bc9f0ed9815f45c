package registry

import (
	"testing"

	"aiswe/internal/catalog"
	"aiswe/internal/errors"
)

func validChallenge(id string, related ...string) catalog.Challenge {
	return catalog.Challenge{
		ID:                 id,
		Name:               "Challenge " + id,
		Severity:           catalog.SeverityHigh,
		AffectedCategories: []catalog.TaskCategory{catalog.CodeGeneration},
		RelatedChallenges:  related,
	}
}

func TestChallengeRegisterAndGet(t *testing.T) {
	r := NewChallengeRegistry()
	if err := r.Register(validChallenge("c1")); err != nil {
		t.Fatalf("Register(c1) unexpected error: %v", err)
	}
	if !r.Has("c1") {
		t.Error("Has(c1) = false, want true")
	}
	if _, err := r.Get("missing"); errors.CodeOf(err) != errors.NotFound {
		t.Errorf("Get(missing) code = %v, want %v", errors.CodeOf(err), errors.NotFound)
	}
}

func TestChallengeUnknownRelatedReference(t *testing.T) {
	r := NewChallengeRegistry()
	err := r.Register(validChallenge("x", "does-not-exist"))
	if errors.CodeOf(err) != errors.InvalidReference {
		t.Errorf("Register code = %v, want %v", errors.CodeOf(err), errors.InvalidReference)
	}
	// Atomicity: the failed registration must not change the registry.
	if r.Len() != 0 {
		t.Errorf("registry size = %d after failed registration, want 0", r.Len())
	}
	if r.Has("x") {
		t.Error("Has(x) = true after failed registration, want false")
	}
}

func TestChallengeSelfReference(t *testing.T) {
	r := NewChallengeRegistry()
	err := r.Register(validChallenge("c1", "c1"))
	if errors.CodeOf(err) != errors.InvalidReference {
		t.Errorf("self-reference Register code = %v, want %v", errors.CodeOf(err), errors.InvalidReference)
	}
}

func TestChallengeValidRelatedReference(t *testing.T) {
	r := NewChallengeRegistry()
	if err := r.Register(validChallenge("c1")); err != nil {
		t.Fatalf("Register(c1) unexpected error: %v", err)
	}
	if err := r.Register(validChallenge("c2", "c1")); err != nil {
		t.Errorf("Register(c2 related to c1) unexpected error: %v", err)
	}
}

func TestChallengeInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*catalog.Challenge)
	}{
		{"bad severity", func(c *catalog.Challenge) { c.Severity = "fatal" }},
		{"bad affected category", func(c *catalog.Challenge) { c.AffectedCategories = []catalog.TaskCategory{"poetry"} }},
		{"empty id", func(c *catalog.Challenge) { c.ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewChallengeRegistry()
			c := validChallenge("c1")
			tt.mutate(&c)
			err := r.Register(c)
			if errors.CodeOf(err) != errors.InvalidField {
				t.Errorf("Register code = %v, want %v", errors.CodeOf(err), errors.InvalidField)
			}
		})
	}
}

func TestChallengeFilterBySeverity(t *testing.T) {
	r := NewChallengeRegistry()
	crit := validChallenge("crit")
	crit.Severity = catalog.SeverityCritical
	low := validChallenge("low")
	low.Severity = catalog.SeverityLow
	for _, c := range []catalog.Challenge{crit, low} {
		if err := r.Register(c); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", c.ID, err)
		}
	}

	got := r.FilterBySeverity(catalog.SeverityCritical)
	if len(got) != 1 || got[0].ID != "crit" {
		t.Errorf("FilterBySeverity(critical) = %v, want [crit]", got)
	}
}

func TestChallengeRegisterAfterClose(t *testing.T) {
	r := NewChallengeRegistry()
	r.Close()
	err := r.Register(validChallenge("c1"))
	if errors.CodeOf(err) != errors.RegistrationClosed {
		t.Errorf("Register after Close code = %v, want %v", errors.CodeOf(err), errors.RegistrationClosed)
	}
}
