package reasonloop

import (
	"fmt"
	"strings"
)

// FormatStep renders one reasoning step for display.
func FormatStep(s Step) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Step %d: %s", s.Iteration, s.Reasoning)
	for _, inv := range s.Invocations {
		fmt.Fprintf(&sb, "\n  Tool: %s", inv.Name)
		if len(inv.Arguments) > 0 {
			fmt.Fprintf(&sb, "\n  Input: %s", inv.Arguments)
		}
		label := "Result"
		if inv.IsError {
			label = "Error"
		}
		fmt.Fprintf(&sb, "\n  %s: %s", label, inv.Result)
	}
	return sb.String()
}

// FormatFinalAnswer renders the final answer with a banner that sets it
// apart from the intermediate steps.
func FormatFinalAnswer(answer string) string {
	rule := strings.Repeat("=", 50)
	return fmt.Sprintf("\n%s\nFinal Answer: %s\n%s", rule, answer, rule)
}
