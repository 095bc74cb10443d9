package reasonloop

import (
	"encoding/json"
	"testing"

	"github.com/iportilla/agents/llm"
)

func TestTurnsToMessages(t *testing.T) {
	call := llm.ToolCall{ID: "call_1", Name: "multiply", Arguments: json.RawMessage(`{"a":2,"b":3}`)}
	history := []Turn{
		NewSystemTurn("be helpful"),
		NewUserTurn("what is 2 times 3?"),
		NewAssistantTurn("multiplying", []llm.ToolCall{call}),
		NewToolResultsTurn([]llm.ToolResult{
			{CallID: "call_1", Content: "6", IsError: false},
		}),
		NewAssistantTurn("the answer is 6", nil),
	}

	messages := TurnsToMessages(history)
	wantRoles := []llm.Role{
		llm.RoleSystem, llm.RoleUser, llm.RoleAssistant, llm.RoleTool, llm.RoleAssistant,
	}
	if len(messages) != len(wantRoles) {
		t.Fatalf("expected %d messages, got %d", len(wantRoles), len(messages))
	}
	for i, role := range wantRoles {
		if messages[i].Role != role {
			t.Errorf("message %d: expected role %s, got %s", i, role, messages[i].Role)
		}
	}

	calls := messages[2].ToolCalls()
	if len(calls) != 1 || calls[0].Name != "multiply" {
		t.Errorf("assistant message lost its tool call: %+v", calls)
	}
	if got := messages[2].Text(); got != "multiplying" {
		t.Errorf("assistant text = %q", got)
	}

	result := messages[3].Parts[0].ToolResult
	if result == nil || result.Content != "6" || result.CallID != "call_1" {
		t.Errorf("tool result message malformed: %+v", messages[3])
	}
}

func TestTurnsToMessagesExpandsMultipleResults(t *testing.T) {
	history := []Turn{
		NewToolResultsTurn([]llm.ToolResult{
			{CallID: "call_1", Content: "first"},
			{CallID: "call_2", Content: "second", IsError: true},
		}),
	}

	messages := TurnsToMessages(history)
	if len(messages) != 2 {
		t.Fatalf("expected one message per result, got %d", len(messages))
	}
	if messages[0].Parts[0].ToolResult.Content != "first" ||
		messages[1].Parts[0].ToolResult.Content != "second" {
		t.Error("results out of order")
	}
	if !messages[1].Parts[0].ToolResult.IsError {
		t.Error("error flag lost in conversion")
	}
}
