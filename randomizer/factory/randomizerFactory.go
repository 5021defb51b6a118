package factory

import (
	"fmt"

	"github.com/ElrondNetwork/elrond-randgen-go/core"
	"github.com/ElrondNetwork/elrond-randgen-go/generate"
	"github.com/ElrondNetwork/elrond-randgen-go/randomizer"
	"github.com/ElrondNetwork/elrond-randgen-go/randomizer/disabled"
)

// ArgRandomizer is the argument used by the randomizer factory
type ArgRandomizer struct {
	RandomizerType string
	Seed           int64
	FixedValue     float64
}

// CreateRandomizer will attempt to create a randomizer instance
func CreateRandomizer(arg ArgRandomizer) (generate.FloatRandomizer, error) {
	switch arg.RandomizerType {
	case core.MathRandomizerType:
		return randomizer.NewMathRandomizer(arg.Seed), nil
	case core.CryptoRandomizerType:
		if arg.Seed != 0 {
			return nil, fmt.Errorf("%w for %s randomizer", ErrSeedNotSupported, arg.RandomizerType)
		}
		return randomizer.NewCryptoRandomizer(), nil
	case core.FixedRandomizerType:
		return &disabled.FixedRandomizer{Value: arg.FixedValue}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRandomizerType, arg.RandomizerType)
	}
}
