// Package xref derives the many-to-many links between challenges, task
// categories, and solutions. Indices are rebuilt from the registries on
// every call; with catalogs of tens of entities that costs nothing and
// rules out incremental-update drift.
package xref

import (
	"sort"

	"aiswe/internal/catalog"
	"aiswe/internal/errors"
	"aiswe/internal/registry"
)

// Resolver answers cross-reference queries over the challenge and solution
// registries. It holds registry references only, never entity copies.
type Resolver struct {
	challenges *registry.ChallengeRegistry
	solutions  *registry.SolutionRegistry
}

// NewResolver creates a resolver over the given registries.
func NewResolver(challenges *registry.ChallengeRegistry, solutions *registry.SolutionRegistry) *Resolver {
	return &Resolver{challenges: challenges, solutions: solutions}
}

// ChallengesForCategory returns the ids of challenges whose affected
// categories include cat, sorted lexically.
func (r *Resolver) ChallengesForCategory(cat catalog.TaskCategory) []string {
	ids := make([]string, 0)
	for _, c := range r.challenges.ListAll() {
		for _, affected := range c.AffectedCategories {
			if affected == cat {
				ids = append(ids, c.ID)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// SolutionsForChallenge returns the ids of solutions addressing the
// challenge, sorted lexically.
func (r *Resolver) SolutionsForChallenge(challengeID string) []string {
	ids := make([]string, 0)
	for _, s := range r.solutions.ListAll() {
		for _, addressed := range s.AddressedChallenges {
			if addressed == challengeID {
				ids = append(ids, s.ID)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// ExpandRelated follows the related-challenge relation transitively up to
// depth hops from the given challenge, excluding the challenge itself. The
// relation is undirected and may contain cycles, so traversal de-duplicates
// with a visited set. Results are sorted lexically.
func (r *Resolver) ExpandRelated(challengeID string, depth int) ([]string, error) {
	if !r.challenges.Has(challengeID) {
		return nil, errors.NewNotFound("challenge", challengeID)
	}

	adjacency := r.relationAdjacency()

	visited := map[string]bool{challengeID: true}
	frontier := []string{challengeID}
	found := make([]string, 0)

	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		next := make([]string, 0)
		for _, id := range frontier {
			for _, neighbor := range adjacency[id] {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				found = append(found, neighbor)
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	sort.Strings(found)
	return found, nil
}

// relationAdjacency builds the undirected adjacency sets from the declared
// related_challenges edges.
func (r *Resolver) relationAdjacency() map[string][]string {
	adjacency := make(map[string][]string)
	for _, c := range r.challenges.ListAll() {
		for _, related := range c.RelatedChallenges {
			adjacency[c.ID] = append(adjacency[c.ID], related)
			adjacency[related] = append(adjacency[related], c.ID)
		}
	}
	return adjacency
}
