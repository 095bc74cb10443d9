package llm

import (
	"encoding/json"
	"strings"
)

// Role identifies who produced a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// PartKind is the discriminator tag for Part.
type PartKind string

const (
	PartText       PartKind = "text"
	PartToolCall   PartKind = "tool_call"
	PartToolResult PartKind = "tool_result"
)

// ToolCall is a model-requested tool invocation. ID correlates the call
// with the ToolResult that answers it.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult is the outcome of executing one ToolCall. Error results are
// still results: the text is fed back to the model so it can correct
// itself.
type ToolResult struct {
	CallID  string `json:"call_id"`
	Content string `json:"content"`
	IsError bool   `json:"is_error"`
}

// Part is a tagged union representing one piece of message content.
type Part struct {
	Kind       PartKind    `json:"kind"`
	Text       string      `json:"text,omitempty"`
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`
	ToolResult *ToolResult `json:"tool_result,omitempty"`
}

// TextPart creates a text Part.
func TextPart(text string) Part {
	return Part{Kind: PartText, Text: text}
}

// ToolCallPart creates a tool call Part.
func ToolCallPart(id, name string, args json.RawMessage) Part {
	return Part{
		Kind:     PartToolCall,
		ToolCall: &ToolCall{ID: id, Name: name, Arguments: args},
	}
}

// ToolResultPart creates a tool result Part.
func ToolResultPart(callID, content string, isError bool) Part {
	return Part{
		Kind:       PartToolResult,
		ToolResult: &ToolResult{CallID: callID, Content: content, IsError: isError},
	}
}

// Message is the fundamental unit of conversation.
type Message struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// Text returns the concatenation of all text parts.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		if p.Kind == PartText {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// ToolCalls extracts all tool calls from the message, in order.
func (m Message) ToolCalls() []ToolCall {
	var calls []ToolCall
	for _, p := range m.Parts {
		if p.Kind == PartToolCall && p.ToolCall != nil {
			calls = append(calls, *p.ToolCall)
		}
	}
	return calls
}

// SystemMessage creates a system Message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Parts: []Part{TextPart(text)}}
}

// UserMessage creates a user Message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{TextPart(text)}}
}

// AssistantMessage creates an assistant Message with text content.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Parts: []Part{TextPart(text)}}
}

// ToolResultMessage creates a tool-role Message carrying one result.
func ToolResultMessage(callID, content string, isError bool) Message {
	return Message{
		Role:  RoleTool,
		Parts: []Part{ToolResultPart(callID, content, isError)},
	}
}

// ToolSchema is the serializable descriptor of one tool, sent to the
// model so it can decide when and how to call it. Parameters is a JSON
// Schema object.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// StopReason describes why the model stopped generating.
type StopReason string

const (
	StopText      StopReason = "stop"       // final natural-language answer
	StopToolCalls StopReason = "tool_calls" // model is requesting tools
)

// Request is the input to CompletionProvider.Complete.
type Request struct {
	Model       string       `json:"model"`
	Messages    []Message    `json:"messages"`
	Tools       []ToolSchema `json:"tools,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
	MaxTokens   *int         `json:"max_tokens,omitempty"`
}

// Response is the output of CompletionProvider.Complete. It is either a
// natural-language answer (StopText) or a batch of requested tool calls
// (StopToolCalls); ToolCalls() is non-empty exactly in the second case.
type Response struct {
	ID         string     `json:"id"`
	Model      string     `json:"model"`
	Provider   string     `json:"provider"`
	Message    Message    `json:"message"`
	StopReason StopReason `json:"stop_reason"`
}

// Text returns the text content of the response message.
func (r Response) Text() string { return r.Message.Text() }

// ToolCalls returns the tool calls requested by the response, in the
// order the model emitted them.
func (r Response) ToolCalls() []ToolCall { return r.Message.ToolCalls() }
