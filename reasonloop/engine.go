package reasonloop

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iportilla/agents/llm"
	"github.com/iportilla/agents/tools"
)

// Config holds construction-time configuration for an Engine. The model
// identifier, system prompt, and iteration cap all live here; the engine
// never reads ambient process state.
type Config struct {
	Model         string   `json:"model"`
	SystemPrompt  string   `json:"system_prompt,omitempty"`
	MaxIterations int      `json:"max_iterations"`
	Temperature   *float64 `json:"temperature,omitempty"`
}

// DefaultConfig returns the default configuration: ten iterations and
// the built-in tutor prompt.
func DefaultConfig() Config {
	return Config{
		SystemPrompt:  DefaultSystemPrompt,
		MaxIterations: 10,
	}
}

// Engine drives the reasoning loop against one completion provider and
// one tool registry. An Engine holds no per-run state: every Run owns
// its own history and step list, so concurrent runs are safe as long as
// the provider and registry are.
type Engine struct {
	provider llm.CompletionProvider
	registry *tools.Registry
	config   Config
	emitter  *Emitter
}

// New creates an Engine. The provider and registry are required; a zero
// MaxIterations takes the default of ten, a negative one is rejected.
func New(provider llm.CompletionProvider, registry *tools.Registry, cfg Config) (*Engine, error) {
	if provider == nil {
		return nil, llm.NewConfigError("completion provider is required")
	}
	if registry == nil {
		return nil, llm.NewConfigError("tool registry is required")
	}
	if cfg.MaxIterations < 0 {
		return nil, llm.NewConfigError("max iterations must be positive, got %d", cfg.MaxIterations)
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	return &Engine{
		provider: provider,
		registry: registry,
		config:   cfg,
		emitter:  NewEmitter(256),
	}, nil
}

// Events returns the engine's event channel for live display.
func (e *Engine) Events() <-chan Event {
	return e.emitter.Events()
}

// Close closes the event channel. Runs already in flight finish
// normally; their events are dropped.
func (e *Engine) Close() {
	e.emitter.Close()
}

// Run solves one problem through the reasoning loop and always returns
// either a complete Solution or an error. Exhausting the iteration
// budget is not an error: the Solution carries NoAnswerSentinel as its
// final answer and every step taken. A provider transport failure aborts
// the run with no Solution.
func (e *Engine) Run(ctx context.Context, problem string) (*Solution, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, llm.NewConfigError("problem must be non-empty")
	}

	runID := uuid.New().String()
	history := []Turn{
		NewSystemTurn(e.config.SystemPrompt),
		NewUserTurn(problem),
	}
	var steps []Step
	used := make(map[string]struct{})
	schemas := e.registry.Schemas()

	e.emitter.Emit(EventRunStart, runID, map[string]any{"problem": problem})

	for iteration := 1; iteration <= e.config.MaxIterations; iteration++ {
		req := llm.Request{
			Model:       e.config.Model,
			Messages:    TurnsToMessages(history),
			Tools:       schemas,
			Temperature: e.config.Temperature,
		}

		e.emitter.Emit(EventModelCallStart, runID, map[string]any{"iteration": iteration})
		resp, err := e.provider.Complete(ctx, req)
		if err != nil {
			e.emitter.Emit(EventRunError, runID, map[string]any{"error": err.Error()})
			return nil, fmt.Errorf("completion provider: %w", err)
		}
		e.emitter.Emit(EventModelCallEnd, runID, map[string]any{
			"iteration": iteration,
			"text":      resp.Text(),
		})

		calls := resp.ToolCalls()
		if len(calls) == 0 {
			answer := resp.Text()
			history = append(history, NewAssistantTurn(answer, nil))
			steps = append(steps, Step{
				Iteration: iteration,
				Reasoning: answer,
				Final:     answer != "",
			})
			if answer == "" {
				// The model produced neither text nor tool calls; give
				// it another iteration rather than accepting an empty
				// answer.
				continue
			}
			e.emitter.Emit(EventRunEnd, runID, map[string]any{"converged": true})
			return newSolution(runID, problem, answer, steps, iteration, used, true), nil
		}

		history = append(history, NewAssistantTurn(resp.Text(), calls))

		// Tool calls execute one at a time, in the order requested: a
		// later call may depend on an earlier result being visible.
		invocations := make([]ToolInvocation, 0, len(calls))
		results := make([]llm.ToolResult, 0, len(calls))
		for _, call := range calls {
			e.emitter.Emit(EventToolCallStart, runID, map[string]any{
				"tool":    call.Name,
				"call_id": call.ID,
			})
			result := e.registry.Dispatch(ctx, call)
			e.emitter.Emit(EventToolCallEnd, runID, map[string]any{
				"tool":     call.Name,
				"call_id":  call.ID,
				"result":   result.Content,
				"is_error": result.IsError,
			})

			if !result.IsError {
				used[call.Name] = struct{}{}
			}
			results = append(results, result)
			invocations = append(invocations, ToolInvocation{
				CallID:    call.ID,
				Name:      call.Name,
				Arguments: call.Arguments,
				Result:    result.Content,
				IsError:   result.IsError,
			})
		}
		history = append(history, NewToolResultsTurn(results))

		steps = append(steps, Step{
			Iteration:   iteration,
			Reasoning:   resp.Text(),
			Invocations: invocations,
		})
	}

	e.emitter.Emit(EventCapReached, runID, map[string]any{"iterations": e.config.MaxIterations})
	e.emitter.Emit(EventRunEnd, runID, map[string]any{"converged": false})
	return newSolution(runID, problem, NoAnswerSentinel, steps, e.config.MaxIterations, used, false), nil
}
