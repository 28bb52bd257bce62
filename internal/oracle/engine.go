package oracle

import "log/slog"

// RuleResult is one line of the advisory trace: which rule ran, whether it
// had a fact to work with, and why it did what it did. The trace is
// narrative output, not part of the functional contract.
type RuleResult struct {
	Rule   string `json:"rule"`
	Fired  bool   `json:"fired"`
	Reason string `json:"reason"`
}

// Engine applies the fixed rule roster to a fresh uniform weight vector.
type Engine struct {
	rules  []Rule
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{rules: Roster(), logger: logger}
}

// Weigh runs every rule in registration order over a fresh vector and
// returns the final weights together with the trace. Every entry is
// strictly positive on return; this path has no failure modes.
func (e *Engine) Weigh(f Facts) (Vector, []RuleResult) {
	w := NewVector(f.Max)
	trace := make([]RuleResult, 0, len(e.rules))

	for _, r := range e.rules {
		fired, reason := r.Apply(f, w)
		trace = append(trace, RuleResult{Rule: r.Name, Fired: fired, Reason: reason})
		e.logger.Debug("rule applied", "rule", r.Name, "fired", fired, "reason", reason)
	}

	w.Clamp()
	return w, trace
}
