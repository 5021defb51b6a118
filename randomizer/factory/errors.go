package factory

import "errors"

// ErrUnknownRandomizerType signals that an unknown randomizer type was provided
var ErrUnknownRandomizerType = errors.New("unknown randomizer type")

// ErrSeedNotSupported signals that a seed was provided for a randomizer that cannot be seeded
var ErrSeedNotSupported = errors.New("seed is not supported")
