package generate

import "errors"

// ErrNilRandomizer signals that a nil randomizer was provided
var ErrNilRandomizer = errors.New("nil float randomizer")

// ErrInvalidRandomValue signals that the randomizer produced a value outside [0, 1)
var ErrInvalidRandomValue = errors.New("random value outside [0, 1)")

// ErrInvalidValue signals that an improper value was provided
var ErrInvalidValue = errors.New("invalid value")
