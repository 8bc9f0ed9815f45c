package catalog

// Catalog is a full set of entities to register at startup. Challenges are
// ordered so that related ids always point at earlier entries; registration
// would otherwise reject them as dangling references.
type Catalog struct {
	Tasks      []Task      `json:"tasks" yaml:"tasks" toml:"tasks"`
	Challenges []Challenge `json:"challenges" yaml:"challenges" toml:"challenges"`
	Solutions  []Solution  `json:"solutions" yaml:"solutions" toml:"solutions"`
}

// Default returns the built-in catalog: the core task taxonomy, the nine
// key challenges, and the four solution pathways. A catalog file configured
// via catalogPath replaces this entirely.
func Default() Catalog {
	return Catalog{
		Tasks:      defaultTasks(),
		Challenges: defaultChallenges(),
		Solutions:  defaultSolutions(),
	}
}

func defaultTasks() []Task {
	return []Task{
		{
			ID:           "function-completion",
			Name:         "Function Completion",
			Category:     CodeGeneration,
			Scope:        FunctionLevel,
			Complexity:   Low,
			Intervention: Low,
			Description:  "Complete code snippets at function level with tab completion",
		},
		{
			ID:           "nl-to-code",
			Name:         "Natural Language to Code",
			Category:     CodeGeneration,
			Scope:        UnitLevel,
			Complexity:   Medium,
			Intervention: Medium,
			Description:  "Generate code from natural language specifications",
		},
		{
			ID:           "code-refactoring",
			Name:         "Code Refactoring",
			Category:     CodeTransformation,
			Scope:        ProjectLevel,
			Complexity:   Low,
			Intervention: High,
			Description:  "Restructure code while maintaining functionality",
		},
		{
			ID:           "code-migration",
			Name:         "Code Migration",
			Category:     CodeTransformation,
			Scope:        ProjectLevel,
			Complexity:   High,
			Intervention: High,
			Description:  "Migrate code between languages or versions",
		},
		{
			ID:           "unit-test-generation",
			Name:         "Unit Test Generation",
			Category:     TestingAnalysis,
			Scope:        FunctionLevel,
			Complexity:   Medium,
			Intervention: Low,
			Description:  "Generate comprehensive unit tests for code coverage",
		},
		{
			ID:           "vulnerability-detection",
			Name:         "Vulnerability Detection",
			Category:     TestingAnalysis,
			Scope:        ProjectLevel,
			Complexity:   High,
			Intervention: Medium,
			Description:  "Identify security vulnerabilities and zero-day exploits",
		},
		{
			ID:           "code-documentation",
			Name:         "Code Documentation",
			Category:     SoftwareMaintenance,
			Scope:        UnitLevel,
			Complexity:   Low,
			Intervention: Low,
			Description:  "Generate and maintain code documentation",
		},
		{
			ID:           "code-navigation",
			Name:         "Code Navigation",
			Category:     SoftwareMaintenance,
			Scope:        ProjectLevel,
			Complexity:   Medium,
			Intervention: Medium,
			Description:  "Find relevant functionality in large codebases",
		},
		{
			ID:           "cicd-configuration",
			Name:         "CI/CD Configuration",
			Category:     ScaffoldingMetacode,
			Scope:        ProjectLevel,
			Complexity:   Medium,
			Intervention: High,
			Description:  "Generate and manage CI/CD pipelines and infrastructure",
		},
		{
			ID:           "property-verification",
			Name:         "Property Verification",
			Category:     FormalVerification,
			Scope:        UnitLevel,
			Complexity:   High,
			Intervention: High,
			Description:  "Prove specific properties of code correctness",
		},
	}
}

func defaultChallenges() []Challenge {
	return []Challenge{
		{
			ID:       "eval-benchmarks",
			Name:     "Evaluation and Benchmarks",
			Severity: SeverityCritical,
			AffectedCategories: []TaskCategory{
				CodeGeneration, CodeTransformation, TestingAnalysis,
				SoftwareMaintenance, FormalVerification,
			},
			Description: "Narrow, contaminated benchmarks that fail to measure real-world software engineering ability",
		},
		{
			ID:       "tool-usage",
			Name:     "Effective Tool Usage",
			Severity: SeverityHigh,
			AffectedCategories: []TaskCategory{
				CodeTransformation, TestingAnalysis, SoftwareMaintenance,
				ScaffoldingMetacode, FormalVerification,
			},
			Description: "Models must select, invoke, and interpret programming tools dynamically",
		},
		{
			ID:       "human-ai-collab",
			Name:     "Human-AI Collaboration",
			Severity: SeverityCritical,
			AffectedCategories: []TaskCategory{
				CodeGeneration, CodeTransformation, SoftwareMaintenance,
				ScaffoldingMetacode,
			},
			RelatedChallenges: []string{"eval-benchmarks"},
			Description:       "Vague specifications, weak controllability, and limited collaboration interfaces",
		},
		{
			ID:       "long-horizon-planning",
			Name:     "Long-Horizon Code Planning",
			Severity: SeverityHigh,
			AffectedCategories: []TaskCategory{
				CodeGeneration, CodeTransformation, ScaffoldingMetacode,
			},
			RelatedChallenges: []string{"human-ai-collab"},
			Description:       "Designing good abstractions and respecting modularity across large projects",
		},
		{
			ID:       "large-scope-contexts",
			Name:     "Large Scope and Long Contexts",
			Severity: SeverityHigh,
			AffectedCategories: []TaskCategory{
				CodeTransformation, TestingAnalysis, SoftwareMaintenance,
				ScaffoldingMetacode,
			},
			RelatedChallenges: []string{"tool-usage"},
			Description:       "Repository-level work exceeds context limits and defeats syntactic retrieval",
		},
		{
			ID:       "semantic-understanding",
			Name:     "Semantic Understanding of Codebases",
			Severity: SeverityCritical,
			AffectedCategories: []TaskCategory{
				CodeTransformation, TestingAnalysis, SoftwareMaintenance,
				FormalVerification,
			},
			RelatedChallenges: []string{"eval-benchmarks", "long-horizon-planning", "large-scope-contexts"},
			Description:       "Missing holistic grasp of code structure, algorithms, and program invariants",
		},
		{
			ID:       "low-resource-domains",
			Name:     "Low-Resource Languages and Specialized Libraries",
			Severity: SeverityHigh,
			AffectedCategories: []TaskCategory{
				CodeGeneration, CodeTransformation, TestingAnalysis,
				SoftwareMaintenance, FormalVerification,
			},
			RelatedChallenges: []string{"semantic-understanding"},
			Description:       "Poor performance on domain-specific languages and proprietary libraries",
		},
		{
			ID:       "version-churn",
			Name:     "Library and API Version Updates",
			Severity: SeverityMedium,
			AffectedCategories: []TaskCategory{
				CodeGeneration, CodeTransformation, TestingAnalysis,
				SoftwareMaintenance, ScaffoldingMetacode,
			},
			RelatedChallenges: []string{"low-resource-domains", "human-ai-collab"},
			Description:       "Rapidly evolving libraries leave models mixing deprecated and current idioms",
		},
		{
			ID:       "high-complexity-ood",
			Name:     "High Logical Complexity and OOD Domains",
			Severity: SeverityCritical,
			AffectedCategories: []TaskCategory{
				CodeGeneration, CodeTransformation, TestingAnalysis,
				FormalVerification,
			},
			RelatedChallenges: []string{"tool-usage", "long-horizon-planning"},
			Description:       "Research-level problems requiring novel algorithms and deep reasoning",
		},
	}
}

func defaultSolutions() []Solution {
	return []Solution{
		{
			ID:             "auto-data-curation",
			Name:           "Automatic Data Curation",
			Category:       DataCollection,
			Feasibility:    Medium,
			TimelineMonths: 12,
			AddressedChallenges: []string{
				"eval-benchmarks", "semantic-understanding", "high-complexity-ood",
			},
			Effectiveness: 0.8,
			Description:   "Augment training data with static analysis, instrumentation, and verification output",
		},
		{
			ID:             "human-data-curation",
			Name:           "Human-Centric Data Curation",
			Category:       DataCollection,
			Feasibility:    Low,
			TimelineMonths: 18,
			AddressedChallenges: []string{
				"human-ai-collab", "eval-benchmarks", "long-horizon-planning",
			},
			Effectiveness: 0.75,
			Description:   "Collect fine-grained developer process data across diverse SWE tasks",
		},
		{
			ID:             "code-rl-environments",
			Name:           "Environment Design for Code RL",
			Category:       Training,
			Feasibility:    Low,
			TimelineMonths: 24,
			AddressedChallenges: []string{
				"long-horizon-planning", "high-complexity-ood", "tool-usage",
			},
			Effectiveness: 0.85,
			Description:   "Executable codebase environments with verifiable rewards for reinforcement learning",
		},
		{
			ID:             "codebase-adaptation",
			Name:           "Specialized Codebase Adaptation",
			Category:       Training,
			Feasibility:    Medium,
			TimelineMonths: 15,
			AddressedChallenges: []string{
				"low-resource-domains", "version-churn", "large-scope-contexts",
			},
			Effectiveness: 0.6,
			Description:   "Test-time training and prompt tuning for low-resource languages and custom APIs",
		},
		{
			ID:             "collab-training",
			Name:           "Human Collaboration Training",
			Category:       Training,
			Feasibility:    Low,
			TimelineMonths: 20,
			AddressedChallenges: []string{
				"human-ai-collab", "eval-benchmarks", "long-horizon-planning",
			},
			Effectiveness: 0.55,
			Description:   "Train models on enhanced specifications and proactive clarification",
		},
		{
			ID:             "semantic-retrieval",
			Name:           "Semantic-Aware Embeddings and Retrieval",
			Category:       Inference,
			Feasibility:    High,
			TimelineMonths: 10,
			AddressedChallenges: []string{
				"large-scope-contexts", "semantic-understanding", "low-resource-domains",
			},
			Effectiveness: 0.8,
			Description:   "Execution-aware embeddings and retrieval tuned jointly with generation",
		},
		{
			ID:             "tool-integration",
			Name:           "SWE Tool Integration",
			Category:       Inference,
			Feasibility:    Medium,
			TimelineMonths: 16,
			AddressedChallenges: []string{
				"tool-usage", "high-complexity-ood", "semantic-understanding",
			},
			Effectiveness: 0.7,
			Description:   "Dynamic tool usage and neurosymbolic integration of PL techniques",
		},
		{
			ID:             "supervision-scaffolding",
			Name:           "Human Supervision Scaffolding",
			Category:       Inference,
			Feasibility:    High,
			TimelineMonths: 8,
			AddressedChallenges: []string{
				"human-ai-collab", "eval-benchmarks", "large-scope-contexts",
			},
			Effectiveness: 0.65,
			Description:   "Summarization, citations, and interactive verification to scaffold human review",
		},
		{
			ID:             "cicd-integration",
			Name:           "SWE Development Framework Integration",
			Category:       FrameworkIntegration,
			Feasibility:    Medium,
			TimelineMonths: 14,
			AddressedChallenges: []string{
				"long-horizon-planning", "large-scope-contexts", "tool-usage",
			},
			Effectiveness: 0.7,
			Description:   "Embed AI review, risk assessment, and anti-pattern steering into CI/CD",
		},
	}
}
