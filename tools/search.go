package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iportilla/agents/llm"
)

// FakeSearch simulates a search engine query with canned results. A real
// deployment would swap in an actual search backend behind the same
// interface.
type FakeSearch struct{}

type searchArgs struct {
	Query string `json:"query"`
}

func (FakeSearch) Name() string { return "fake_search" }

func (FakeSearch) Describe() llm.ToolSchema {
	return llm.ToolSchema{
		Name:        "fake_search",
		Description: "Simulate a search engine query and return mock results",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query string to look up",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (s FakeSearch) Invoke(_ context.Context, raw json.RawMessage) (string, error) {
	var args searchArgs
	if err := DecodeArgs(s.Name(), raw, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.Query) == "" {
		return "", &InvalidArgumentsError{Tool: s.Name(), Reason: "requires a 'query' parameter"}
	}
	return fmt.Sprintf("Search results for '%s': A, B, and C.", args.Query), nil
}
