// Package query provides the single entry point external callers use to
// request filtered views, analyses, and roadmaps. The engine owns the three
// registries, populates them from a catalog at construction, and freezes
// registration at the first query.
package query

import (
	"time"

	"github.com/google/uuid"

	"aiswe/internal/catalog"
	"aiswe/internal/config"
	"aiswe/internal/logging"
	"aiswe/internal/registry"
	"aiswe/internal/scoring"
	"aiswe/internal/xref"
)

// Engine is the query facade over the registered catalog.
type Engine struct {
	tasks      *registry.TaskRegistry
	challenges *registry.ChallengeRegistry
	solutions  *registry.SolutionRegistry
	resolver   *xref.Resolver
	scorer     *scoring.Scorer
	logger     *logging.Logger
	cfg        *config.Config
	runID      string
	closed     bool
}

// Provenance identifies the engine run a response came from.
type Provenance struct {
	RunID           string `json:"runId"`
	QueryDurationMs int64  `json:"queryDurationMs"`
}

// NewEngine creates an engine and populates it: from the configured catalog
// file when cfg.CatalogPath is set, otherwise from the built-in catalog.
func NewEngine(cfg *config.Config, logger *logging.Logger) (*Engine, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}
	return NewEngineFromCatalog(cat, cfg, logger)
}

// NewEngineFromCatalog creates an engine over an explicit catalog. Any
// registration failure aborts construction; partial catalogs are not
// served.
func NewEngineFromCatalog(cat catalog.Catalog, cfg *config.Config, logger *logging.Logger) (*Engine, error) {
	challenges := registry.NewChallengeRegistry()
	engine := &Engine{
		tasks:      registry.NewTaskRegistry(),
		challenges: challenges,
		solutions:  registry.NewSolutionRegistry(challenges),
		logger:     logger,
		cfg:        cfg,
		runID:      uuid.NewString(),
	}
	engine.resolver = xref.NewResolver(engine.challenges, engine.solutions)
	engine.scorer = scoring.NewScorer(engine.challenges, engine.solutions)

	for _, t := range cat.Tasks {
		if err := engine.tasks.Register(t); err != nil {
			return nil, err
		}
	}
	for _, c := range cat.Challenges {
		if err := engine.challenges.Register(c); err != nil {
			return nil, err
		}
	}
	for _, s := range cat.Solutions {
		if err := engine.solutions.Register(s); err != nil {
			return nil, err
		}
	}

	logger.Info("Catalog registered", map[string]interface{}{
		"tasks":      engine.tasks.Len(),
		"challenges": engine.challenges.Len(),
		"solutions":  engine.solutions.Len(),
	})

	return engine, nil
}

// RegisterTask adds a task before the first query.
func (e *Engine) RegisterTask(t catalog.Task) error {
	return e.tasks.Register(t)
}

// RegisterChallenge adds a challenge before the first query.
func (e *Engine) RegisterChallenge(c catalog.Challenge) error {
	return e.challenges.Register(c)
}

// RegisterSolution adds a solution before the first query.
func (e *Engine) RegisterSolution(s catalog.Solution) error {
	return e.solutions.Register(s)
}

// freeze closes all registries at the first query. Registration after this
// point fails with RegistrationClosed.
func (e *Engine) freeze() {
	if e.closed {
		return
	}
	e.closed = true
	e.tasks.Close()
	e.challenges.Close()
	e.solutions.Close()
	e.logger.Debug("Registries frozen", map[string]interface{}{
		"runId": e.runID,
	})
}

// QuickWinWindow returns the configured default quick-win window in months.
func (e *Engine) QuickWinWindow() int {
	return e.cfg.Analysis.QuickWinMonths
}

// provenance stamps a response with the run id and elapsed time.
func (e *Engine) provenance(start time.Time) *Provenance {
	return &Provenance{
		RunID:           e.runID,
		QueryDurationMs: time.Since(start).Milliseconds(),
	}
}
