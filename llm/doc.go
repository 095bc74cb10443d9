// Package llm defines the completion-provider boundary used by the
// reasoning loop: a typed message model, a blocking CompletionProvider
// interface, and an error taxonomy that separates transport failures
// from everything the loop can recover from.
//
// The package ships one concrete provider, GollmProvider, which wraps
// the gollm library (github.com/teilomillet/gollm) so the same loop can
// talk to OpenAI or Anthropic without knowing which is behind it.
//
// # Quick Start
//
//	provider, _ := llm.NewGollmProvider("openai", llm.WithModel("gpt-4o-mini"))
//
//	resp, err := provider.Complete(ctx, llm.Request{
//	    Model:    "gpt-4o-mini",
//	    Messages: []llm.Message{llm.UserMessage("What is 15 times 23?")},
//	    Tools:    registry.Schemas(),
//	})
//
// A Response carries either plain text (StopReason "stop") or one or
// more requested tool calls (StopReason "tool_calls"); callers branch on
// Response.ToolCalls().
package llm
