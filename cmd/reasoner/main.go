// Command reasoner runs the reasoning loop against a single problem and
// prints the resulting solution.
//
// Usage:
//
//	reasoner [-provider openai] [-model gpt-4o-mini] [-max-iterations 10] [-csv-root .] "What is 15 times 23?"
//
// API keys are read from the environment (or a .env file) by the
// provider layer; the loop itself is configured entirely through flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	_ "github.com/joho/godotenv/autoload"

	"github.com/iportilla/agents/llm"
	"github.com/iportilla/agents/reasonloop"
	"github.com/iportilla/agents/tools"
)

func main() {
	var (
		providerName  = flag.String("provider", "openai", "completion provider (openai, anthropic)")
		model         = flag.String("model", "", "model ID or alias (default: provider's catalog default)")
		maxIterations = flag.Int("max-iterations", 10, "iteration cap for the reasoning loop")
		csvRoot       = flag.String("csv-root", ".", "root directory for the summarize_csv tool")
		quiet         = flag.Bool("quiet", false, "suppress the live event stream on stderr")
	)
	flag.Parse()

	problem := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if problem == "" {
		fmt.Fprintln(os.Stderr, "usage: reasoner [flags] <problem>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*providerName, *model, *maxIterations, *csvRoot, *quiet, problem); err != nil {
		fmt.Fprintf(os.Stderr, "reasoner: %v\n", err)
		os.Exit(1)
	}
}

func run(providerName, model string, maxIterations int, csvRoot string, quiet bool, problem string) error {
	if model != "" {
		info := llm.Lookup(model)
		if info == nil {
			return fmt.Errorf("unknown model %q", model)
		}
		if info.Provider != providerName {
			return fmt.Errorf("model %q belongs to provider %q, not %q", model, info.Provider, providerName)
		}
		model = info.ID
	}

	provider, err := llm.NewGollmProvider(providerName, llm.WithModel(model))
	if err != nil {
		return err
	}

	registry := tools.NewRegistry()
	registry.Register(tools.Multiply{})
	registry.Register(tools.Divide{})
	registry.Register(tools.Calculator{})
	registry.Register(tools.FakeSearch{})
	registry.Register(tools.NewSummarizeCSV(csvRoot))

	cfg := reasonloop.DefaultConfig()
	cfg.Model = model
	cfg.MaxIterations = maxIterations

	engine, err := reasonloop.New(provider, registry, cfg)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	if !quiet {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for event := range engine.Events() {
				fmt.Fprintf(os.Stderr, "[%s] %v\n", event.Kind, event.Data)
			}
		}()
	}

	solution, runErr := engine.Run(context.Background(), problem)
	engine.Close()
	wg.Wait()

	if runErr != nil {
		var cfgErr *llm.ConfigError
		if errors.As(runErr, &cfgErr) {
			return runErr
		}
		return fmt.Errorf("could not reach the model: %w", runErr)
	}

	for _, step := range solution.Steps {
		fmt.Println(reasonloop.FormatStep(step))
	}

	if !solution.Converged {
		fmt.Printf("\nGave up after %d iterations.\n", solution.Iterations)
	}
	fmt.Println(reasonloop.FormatFinalAnswer(solution.FinalAnswer))
	fmt.Printf("\nIterations: %d\n", solution.Iterations)
	if len(solution.ToolsUsed) > 0 {
		fmt.Printf("Tools used: %s\n", strings.Join(solution.ToolsUsed, ", "))
	}
	return nil
}
