// Package strategy ranks BFC's candidate transformation initiatives. It
// screens projects against viability thresholds, scores potential value
// against effort, duration and cost, and selects portfolios under a capital
// constraint. All functions are pure and deterministic.
package strategy

import (
	"fmt"
	"sort"
)

// Effort classifies a project's delivery effort.
type Effort int

const (
	EffortLow Effort = iota + 1
	EffortMedium
	EffortHigh
)

func (e Effort) String() string {
	switch e {
	case EffortLow:
		return "Low"
	case EffortMedium:
		return "Medium"
	case EffortHigh:
		return "High"
	}
	return "Unknown"
}

// Project is one candidate initiative from the transformation roadmap.
type Project struct {
	Name           string
	Description    string
	PotentialValue []string
	Effort         Effort
	TimelineMonths float64
	CostEstimate   float64
	Dependencies   []string

	StrategicPriority int // 1-10
	RiskLevel         int // 1-10
}

// Thresholds are the viability limits a project must stay within.
type Thresholds struct {
	MaxTimelineMonths float64
	MaxCost           float64
	MaxEffort         Effort
}

// DefaultThresholds returns the case-study screening limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxTimelineMonths: 24,
		MaxCost:           2_000_000,
		MaxEffort:         EffortHigh,
	}
}

// Framework screens and scores a set of candidate projects.
type Framework struct {
	thresholds Thresholds
	projects   []Project
}

// NewFramework creates a framework with the given viability thresholds.
func NewFramework(thresholds Thresholds) *Framework {
	return &Framework{thresholds: thresholds}
}

// Add registers a candidate project.
func (f *Framework) Add(p Project) {
	f.projects = append(f.projects, p)
}

// Viable returns the projects that pass every viability threshold, in
// insertion order.
func (f *Framework) Viable() []Project {
	var viable []Project
	for _, p := range f.projects {
		if len(f.NonviabilityReasons(p)) == 0 {
			viable = append(viable, p)
		}
	}
	return viable
}

// Nonviable returns the projects failing at least one threshold.
func (f *Framework) Nonviable() []Project {
	var out []Project
	for _, p := range f.projects {
		if len(f.NonviabilityReasons(p)) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// NonviabilityReasons lists every threshold the project exceeds; an empty
// slice means the project is viable.
func (f *Framework) NonviabilityReasons(p Project) []string {
	var reasons []string
	if p.TimelineMonths > f.thresholds.MaxTimelineMonths {
		reasons = append(reasons, fmt.Sprintf("timeline (%.1f months) exceeds maximum (%.1f months)",
			p.TimelineMonths, f.thresholds.MaxTimelineMonths))
	}
	if p.CostEstimate > f.thresholds.MaxCost {
		reasons = append(reasons, fmt.Sprintf("cost ($%.2f) exceeds maximum ($%.2f)",
			p.CostEstimate, f.thresholds.MaxCost))
	}
	if p.Effort > f.thresholds.MaxEffort {
		reasons = append(reasons, fmt.Sprintf("effort level (%s) exceeds maximum (%s)",
			p.Effort, f.thresholds.MaxEffort))
	}
	return reasons
}

// Score is the project's value score: each potential-value point is worth 10,
// penalized by effort (5 per level), duration (0.5 per month) and cost
// (1 per $100k).
func (f *Framework) Score(p Project) float64 {
	value := float64(len(p.PotentialValue)) * 10
	effortPenalty := float64(p.Effort) * 5
	timePenalty := p.TimelineMonths * 0.5
	costPenalty := p.CostEstimate / 100_000
	return value - effortPenalty - timePenalty - costPenalty
}

// ScoredProject pairs a project with its value score.
type ScoredProject struct {
	Project
	Score float64
}

// Prioritize ranks projects by value score, highest first; ties break by
// name so the ranking is stable across runs.
func (f *Framework) Prioritize(projects []Project) []ScoredProject {
	ranked := make([]ScoredProject, 0, len(projects))
	for _, p := range projects {
		ranked = append(ranked, ScoredProject{Project: p, Score: f.Score(p)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// Portfolio is a selected project combination.
type Portfolio struct {
	Projects   []string
	TotalCost  float64
	TotalScore float64
}

// OptimalPortfolio returns the project combination with the highest combined
// value score whose total cost stays within capital. Exhaustive search;
// candidate counts are small. Score ties resolve to the cheaper combination.
func (f *Framework) OptimalPortfolio(projects []Project, capital float64) Portfolio {
	var best Portfolio
	n := len(projects)

	for mask := 1; mask < 1<<n; mask++ {
		var cost, score float64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				cost += projects[i].CostEstimate
				score += f.Score(projects[i])
			}
		}
		if cost > capital {
			continue
		}
		if score > best.TotalScore || (score == best.TotalScore && len(best.Projects) > 0 && cost < best.TotalCost) {
			names := make([]string, 0, n)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					names = append(names, projects[i].Name)
				}
			}
			best = Portfolio{Projects: names, TotalCost: cost, TotalScore: score}
		}
	}
	return best
}

// PathResult is the outcome of one greedy selection strategy.
type PathResult struct {
	Projects         []string
	CapitalUsed      float64
	CapitalRemaining float64
	MonthsUsed       float64
	TotalScore       float64
}

// Selection strategy names, keyed into SimulatePaths results.
const (
	PathHighScoreFirst = "high_score_first"
	PathLowCostFirst   = "low_cost_first"
	PathQuickWins      = "quick_wins"
)

// SimulatePaths runs three greedy selection strategies over the projects,
// each picking in its own order while both the capital and the time budget
// hold: highest value score first, lowest cost first, shortest timeline
// first.
func (f *Framework) SimulatePaths(projects []Project, initialCapital, horizonMonths float64) map[string]PathResult {
	orders := map[string][]Project{
		PathHighScoreFirst: f.sortedBy(projects, func(a, b Project) bool { return f.Score(a) > f.Score(b) }),
		PathLowCostFirst:   f.sortedBy(projects, func(a, b Project) bool { return a.CostEstimate < b.CostEstimate }),
		PathQuickWins:      f.sortedBy(projects, func(a, b Project) bool { return a.TimelineMonths < b.TimelineMonths }),
	}

	results := make(map[string]PathResult, len(orders))
	for name, order := range orders {
		capital := initialCapital
		months := 0.0
		res := PathResult{}
		for _, p := range order {
			if p.CostEstimate > capital || months+p.TimelineMonths > horizonMonths {
				continue
			}
			res.Projects = append(res.Projects, p.Name)
			capital -= p.CostEstimate
			months += p.TimelineMonths
			res.TotalScore += f.Score(p)
		}
		res.CapitalUsed = initialCapital - capital
		res.CapitalRemaining = capital
		res.MonthsUsed = months
		results[name] = res
	}
	return results
}

// sortedBy returns a copy of projects ordered by less, ties broken by name.
func (f *Framework) sortedBy(projects []Project, less func(a, b Project) bool) []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	sort.Slice(out, func(i, j int) bool {
		if less(out[i], out[j]) {
			return true
		}
		if less(out[j], out[i]) {
			return false
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// DependencyClosure expands each project's dependency list with indirect
// dependencies. Returned lists are sorted; projects without dependencies map
// to an empty list.
func DependencyClosure(projects []Project) map[string][]string {
	closure := make(map[string]map[string]bool, len(projects))
	for _, p := range projects {
		deps := make(map[string]bool, len(p.Dependencies))
		for _, d := range p.Dependencies {
			deps[d] = true
		}
		closure[p.Name] = deps
	}

	for changed := true; changed; {
		changed = false
		for _, deps := range closure {
			for dep := range deps {
				for indirect := range closure[dep] {
					if !deps[indirect] {
						deps[indirect] = true
						changed = true
					}
				}
			}
		}
	}

	out := make(map[string][]string, len(closure))
	for name, deps := range closure {
		sorted := make([]string, 0, len(deps))
		for d := range deps {
			sorted = append(sorted, d)
		}
		sort.Strings(sorted)
		out[name] = sorted
	}
	return out
}
