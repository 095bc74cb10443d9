package llm

import (
	"encoding/json"
	"testing"
)

func TestMessageHelpers(t *testing.T) {
	cases := []struct {
		msg  Message
		role Role
		text string
	}{
		{SystemMessage("be brief"), RoleSystem, "be brief"},
		{UserMessage("hello"), RoleUser, "hello"},
		{AssistantMessage("hi"), RoleAssistant, "hi"},
	}
	for _, tc := range cases {
		if tc.msg.Role != tc.role {
			t.Errorf("expected role %s, got %s", tc.role, tc.msg.Role)
		}
		if tc.msg.Text() != tc.text {
			t.Errorf("expected text %q, got %q", tc.text, tc.msg.Text())
		}
	}
}

func TestMessageTextConcatenatesParts(t *testing.T) {
	msg := Message{
		Role: RoleAssistant,
		Parts: []Part{
			TextPart("first "),
			ToolCallPart("call_1", "multiply", json.RawMessage(`{}`)),
			TextPart("second"),
		},
	}
	if got := msg.Text(); got != "first second" {
		t.Errorf("Text() = %q", got)
	}
}

func TestMessageToolCallsPreserveOrder(t *testing.T) {
	msg := Message{
		Role: RoleAssistant,
		Parts: []Part{
			ToolCallPart("call_1", "multiply", json.RawMessage(`{"a":1}`)),
			ToolCallPart("call_2", "divide", json.RawMessage(`{"a":2}`)),
		},
	}
	calls := msg.ToolCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Name != "multiply" || calls[1].Name != "divide" {
		t.Errorf("order not preserved: %v, %v", calls[0].Name, calls[1].Name)
	}
}

func TestToolResultMessage(t *testing.T) {
	msg := ToolResultMessage("call_1", "345", false)
	if msg.Role != RoleTool {
		t.Errorf("expected tool role, got %s", msg.Role)
	}
	result := msg.Parts[0].ToolResult
	if result == nil || result.CallID != "call_1" || result.Content != "345" || result.IsError {
		t.Errorf("malformed tool result message: %+v", msg)
	}
}

func TestResponseAccessors(t *testing.T) {
	resp := Response{
		Message: Message{
			Role: RoleAssistant,
			Parts: []Part{
				TextPart("multiplying"),
				ToolCallPart("call_1", "multiply", json.RawMessage(`{"a":15,"b":23}`)),
			},
		},
		StopReason: StopToolCalls,
	}
	if resp.Text() != "multiplying" {
		t.Errorf("Text() = %q", resp.Text())
	}
	calls := resp.ToolCalls()
	if len(calls) != 1 || calls[0].ID != "call_1" {
		t.Errorf("ToolCalls() = %+v", calls)
	}
}
