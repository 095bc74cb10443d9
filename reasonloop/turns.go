package reasonloop

import (
	"time"

	"github.com/iportilla/agents/llm"
)

// TurnKind discriminates between turn types.
type TurnKind string

const (
	TurnSystem      TurnKind = "system"
	TurnUser        TurnKind = "user"
	TurnAssistant   TurnKind = "assistant"
	TurnToolResults TurnKind = "tool_results"
)

// Turn is a single entry in the conversation history. History is
// append-only within a run and owned by that run alone.
type Turn struct {
	Kind      TurnKind         `json:"kind"`
	Timestamp time.Time        `json:"timestamp"`
	Content   string           `json:"content,omitempty"`
	ToolCalls []llm.ToolCall   `json:"tool_calls,omitempty"`
	Results   []llm.ToolResult `json:"results,omitempty"`
}

// NewSystemTurn creates a Turn carrying the system instruction.
func NewSystemTurn(content string) Turn {
	return Turn{Kind: TurnSystem, Timestamp: time.Now(), Content: content}
}

// NewUserTurn creates a Turn carrying user input.
func NewUserTurn(content string) Turn {
	return Turn{Kind: TurnUser, Timestamp: time.Now(), Content: content}
}

// NewAssistantTurn creates a Turn carrying a model response, with any
// tool calls the model requested.
func NewAssistantTurn(content string, calls []llm.ToolCall) Turn {
	return Turn{Kind: TurnAssistant, Timestamp: time.Now(), Content: content, ToolCalls: calls}
}

// NewToolResultsTurn creates a Turn carrying tool execution results, in
// the order the calls were made.
func NewToolResultsTurn(results []llm.ToolResult) Turn {
	return Turn{Kind: TurnToolResults, Timestamp: time.Now(), Results: results}
}

// TurnsToMessages converts the turn history into provider messages,
// preserving order: each assistant turn is one message, each tool result
// becomes its own tool-role message.
func TurnsToMessages(history []Turn) []llm.Message {
	var messages []llm.Message
	for _, turn := range history {
		switch turn.Kind {
		case TurnSystem:
			messages = append(messages, llm.SystemMessage(turn.Content))
		case TurnUser:
			messages = append(messages, llm.UserMessage(turn.Content))
		case TurnAssistant:
			msg := llm.AssistantMessage(turn.Content)
			for _, tc := range turn.ToolCalls {
				msg.Parts = append(msg.Parts, llm.ToolCallPart(tc.ID, tc.Name, tc.Arguments))
			}
			messages = append(messages, msg)
		case TurnToolResults:
			for _, res := range turn.Results {
				messages = append(messages, llm.ToolResultMessage(res.CallID, res.Content, res.IsError))
			}
		}
	}
	return messages
}
