package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/iportilla/agents/llm"
)

// Tool is one callable capability exposed to the model. Implementations
// are opaque to the loop: a name, a schema, and a function from
// arguments to result text.
type Tool interface {
	// Name returns the tool's unique name as the model will request it.
	Name() string

	// Describe returns the schema advertised to the model.
	Describe() llm.ToolSchema

	// Invoke executes the tool. It returns the result text, or an
	// InvalidArgumentsError (or any other error) that the registry turns
	// into an error-flagged result.
	Invoke(ctx context.Context, args json.RawMessage) (string, error)
}

// UnknownToolError reports a requested tool name with no registration.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// InvalidArgumentsError reports tool arguments that could not be decoded
// or that fail the tool's requirements.
type InvalidArgumentsError struct {
	Tool   string
	Reason string
	Cause  error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Reason)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return e.Cause
}

// DecodeArgs unmarshals model-supplied argument JSON into v. Models
// occasionally emit near-JSON (single quotes, unquoted keys, trailing
// commas); a failed decode is retried once after jsonrepair. Empty
// arguments decode as an empty object.
func DecodeArgs(tool string, raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(string(raw))
	if err != nil {
		return &InvalidArgumentsError{Tool: tool, Reason: "arguments are not valid JSON", Cause: err}
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return &InvalidArgumentsError{Tool: tool, Reason: "arguments are not valid JSON", Cause: err}
	}
	return nil
}
