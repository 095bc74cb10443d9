// Package tools implements the tool registry consumed by the reasoning
// loop. A Tool binds a name and a JSON-schema description to an opaque
// function from arguments to result text; the Registry handles lookup,
// schema collection, and dispatch of model-requested calls.
//
// Dispatch never fails the run: an unknown tool name or invalid
// arguments become an error-flagged result whose text is fed back to the
// model so it can correct itself.
package tools
