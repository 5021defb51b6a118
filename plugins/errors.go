package plugins

import "errors"

// ErrNilConsoleWriter signals that a nil console writer was provided
var ErrNilConsoleWriter = errors.New("nil console writer")

// ErrNilGeneratorOutput signals that a nil generator output was provided
var ErrNilGeneratorOutput = errors.New("nil generator output")
