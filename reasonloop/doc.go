// Package reasonloop implements a bounded reasoning loop that pairs a
// language model with a registry of tools to solve a single problem.
//
// The loop repeats up to a configured iteration cap: send the full
// conversation and tool schemas to the model; if the model answers in
// plain text the run succeeds; if it requests tool calls they are
// executed sequentially, in the order requested, and the results are fed
// back into the conversation for the next iteration. Either way every
// iteration is recorded as a Step, and the run always ends in a Solution
// carrying the full audit trail. Hitting the cap is a normal (if
// degraded) outcome, not an error; the only failure that aborts a run is
// a transport error from the completion provider.
//
// # Quick Start
//
//	registry := tools.NewRegistry()
//	registry.Register(tools.Multiply{})
//
//	engine, err := reasonloop.New(provider, registry, reasonloop.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	solution, err := engine.Run(ctx, "What is 15 times 23?")
//	if err != nil {
//	    log.Fatal(err) // could not reach the model
//	}
//	for _, step := range solution.Steps {
//	    fmt.Println(reasonloop.FormatStep(step))
//	}
//	fmt.Println(reasonloop.FormatFinalAnswer(solution.FinalAnswer))
package reasonloop
