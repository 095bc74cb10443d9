package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractToolCalls(t *testing.T) {
	text := `I'll multiply those. [{"name": "multiply", "arguments": {"a": 15, "b": 23}}]`
	calls, cleaned := extractToolCalls(text)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "multiply" {
		t.Errorf("call name = %q", calls[0].Name)
	}
	var args map[string]float64
	if err := json.Unmarshal(calls[0].Arguments, &args); err != nil {
		t.Fatalf("arguments not valid JSON: %v", err)
	}
	if args["a"] != 15 || args["b"] != 23 {
		t.Errorf("arguments = %v", args)
	}
	if cleaned != "I'll multiply those." {
		t.Errorf("cleaned text = %q", cleaned)
	}
}

func TestExtractToolCallsRepairsNearJSON(t *testing.T) {
	// Single quotes throughout, as some models emit.
	text := `[{'name': 'multiply', 'arguments': {'a': 2, 'b': 3}}]`
	calls, _ := extractToolCalls(text)
	if len(calls) != 1 || calls[0].Name != "multiply" {
		t.Fatalf("repairable call block not extracted: %+v", calls)
	}
}

func TestExtractToolCallsPlainText(t *testing.T) {
	text := "The answer is 345."
	calls, cleaned := extractToolCalls(text)
	if calls != nil {
		t.Errorf("expected no calls, got %+v", calls)
	}
	if cleaned != text {
		t.Errorf("plain text altered: %q", cleaned)
	}
}

func TestTranslateError(t *testing.T) {
	p := &GollmProvider{provider: "openai"}

	cases := []struct {
		msg  string
		want any
	}{
		{"API error: 401 Unauthorized", new(*AuthError)},
		{"invalid api key provided", new(*AuthError)},
		{"429 rate limit exceeded", new(*RateLimitError)},
		{"500 internal server error", new(*ServerError)},
		{"context deadline exceeded", new(*TimeoutError)},
		{"dial tcp: connection refused", new(*NetworkError)},
		{"something inexplicable", new(*ProviderError)},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			err := p.translateError(errors.New(tc.msg))
			var matched bool
			switch target := tc.want.(type) {
			case **AuthError:
				matched = errors.As(err, target)
			case **RateLimitError:
				matched = errors.As(err, target)
			case **ServerError:
				matched = errors.As(err, target)
			case **TimeoutError:
				matched = errors.As(err, target)
			case **NetworkError:
				matched = errors.As(err, target)
			case **ProviderError:
				matched = errors.As(err, target)
			}
			if !matched {
				t.Errorf("%q not classified as %T", tc.msg, tc.want)
			}
			if !IsProviderError(err) {
				t.Errorf("%q not a provider error", tc.msg)
			}
		})
	}

	if p.translateError(nil) != nil {
		t.Error("nil error must stay nil")
	}
}
