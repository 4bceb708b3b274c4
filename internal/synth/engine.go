package synth

import "context"

// Engine is the synthesis engine behind the boundary. Implementations
// receive a wire-encoded expression tree and return a wire-encoded
// replacement tree.
//
// The call is one-shot, synchronous, and blocking: there is no streaming,
// no partial transfer, and no engine-side retry. Cancellation via ctx is
// advisory; an engine that ignores it simply runs to completion.
type Engine interface {
	Synthesize(ctx context.Context, request []byte) ([]byte, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, request []byte) ([]byte, error)

// Synthesize implements Engine.
func (f EngineFunc) Synthesize(ctx context.Context, request []byte) ([]byte, error) {
	return f(ctx, request)
}

// EchoEngine is an in-process probe engine that returns every request
// unchanged. It exists for boundary conformance testing: a tree sent
// through an EchoEngine must come back deep-equal.
type EchoEngine struct{}

// Synthesize implements Engine.
func (EchoEngine) Synthesize(_ context.Context, request []byte) ([]byte, error) {
	out := make([]byte, len(request))
	copy(out, request)
	return out, nil
}
