package reasonloop

import (
	"encoding/json"
	"sort"
)

// NoAnswerSentinel is the final answer reported when the loop exhausts
// its iteration budget without the model producing a text-only answer.
const NoAnswerSentinel = "no definitive answer reached within the iteration budget"

// ToolInvocation records one satisfied tool call: the request and the
// result that answered it.
type ToolInvocation struct {
	CallID    string          `json:"call_id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
	Result    string          `json:"result"`
	IsError   bool            `json:"is_error"`
}

// Step is the record of one completed loop iteration. Steps are appended
// in iteration order and never mutated afterwards; Invocations preserves
// the order the model requested its calls.
type Step struct {
	Iteration   int              `json:"iteration"`
	Reasoning   string           `json:"reasoning"`
	Invocations []ToolInvocation `json:"invocations,omitempty"`
	Final       bool             `json:"final"`
}

// ToolCalled reports whether this step invoked any tool.
func (s Step) ToolCalled() bool { return len(s.Invocations) > 0 }

// Solution is the terminal output of a run: the problem, the final
// answer (or NoAnswerSentinel on cap termination), and the full ordered
// audit trail. It is constructed once, at termination, and not modified
// after.
type Solution struct {
	RunID       string   `json:"run_id"`
	Problem     string   `json:"problem"`
	FinalAnswer string   `json:"final_answer"`
	Steps       []Step   `json:"steps"`
	Iterations  int      `json:"iterations"`
	ToolsUsed   []string `json:"tools_used"`
	Converged   bool     `json:"converged"`
}

func newSolution(runID, problem, answer string, steps []Step, iterations int, used map[string]struct{}, converged bool) *Solution {
	names := make([]string, 0, len(used))
	for name := range used {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Step, len(steps))
	copy(out, steps)

	return &Solution{
		RunID:       runID,
		Problem:     problem,
		FinalAnswer: answer,
		Steps:       out,
		Iterations:  iterations,
		ToolsUsed:   names,
		Converged:   converged,
	}
}
