package tools

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/iportilla/agents/llm"
)

// Multiply multiplies two numbers.
type Multiply struct{}

type binaryArgs struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
}

func (Multiply) Name() string { return "multiply" }

func (Multiply) Describe() llm.ToolSchema {
	return llm.ToolSchema{
		Name:        "multiply",
		Description: "Multiply two numbers together",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a": map[string]any{"type": "number", "description": "First number to multiply"},
				"b": map[string]any{"type": "number", "description": "Second number to multiply"},
			},
			"required": []string{"a", "b"},
		},
	}
}

func (m Multiply) Invoke(_ context.Context, raw json.RawMessage) (string, error) {
	var args binaryArgs
	if err := DecodeArgs(m.Name(), raw, &args); err != nil {
		return "", err
	}
	if args.A == nil || args.B == nil {
		return "", &InvalidArgumentsError{Tool: m.Name(), Reason: "requires 'a' and 'b' parameters"}
	}
	return FormatNumber(*args.A * *args.B), nil
}

// Divide divides one number by another. Division by zero is a tool
// error, not a crash.
type Divide struct{}

func (Divide) Name() string { return "divide" }

func (Divide) Describe() llm.ToolSchema {
	return llm.ToolSchema{
		Name:        "divide",
		Description: "Divide the first number by the second",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a": map[string]any{"type": "number", "description": "Dividend"},
				"b": map[string]any{"type": "number", "description": "Divisor"},
			},
			"required": []string{"a", "b"},
		},
	}
}

func (d Divide) Invoke(_ context.Context, raw json.RawMessage) (string, error) {
	var args binaryArgs
	if err := DecodeArgs(d.Name(), raw, &args); err != nil {
		return "", err
	}
	if args.A == nil || args.B == nil {
		return "", &InvalidArgumentsError{Tool: d.Name(), Reason: "requires 'a' and 'b' parameters"}
	}
	if *args.B == 0 {
		return "", &InvalidArgumentsError{Tool: d.Name(), Reason: "division by zero"}
	}
	return FormatNumber(*args.A / *args.B), nil
}

// FormatNumber renders a result the way the model expects to read it:
// integral values without a decimal point ("345"), everything else in
// the shortest exact decimal form.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
