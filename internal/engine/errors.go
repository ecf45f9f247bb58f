package engine

import "errors"

var (
	// ErrNoSurface indicates a context built without a drawing surface.
	ErrNoSurface = errors.New("engine: no drawing surface")

	// ErrNoStrategy indicates a context built without a render strategy.
	ErrNoStrategy = errors.New("engine: no render strategy")

	// ErrStop may be returned by a FrameFunc to end Run without error.
	ErrStop = errors.New("engine: stop")
)
