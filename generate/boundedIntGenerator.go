package generate

import (
	"fmt"

	"github.com/ElrondNetwork/elrond-go-core/core/check"
	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/ElrondNetwork/elrond-randgen-go/core"
	"github.com/ElrondNetwork/elrond-randgen-go/data"
)

var log = logger.GetOrCreate("generate")

type boundedIntGenerator struct {
	randomizer     FloatRandomizer
	randomizerType string
	min            int64
	max            int64
}

// NewBoundedIntGenerator will create a generator producing integers in the inclusive range [Min, Max]
func NewBoundedIntGenerator(arg ArgBoundedIntGenerator) (*boundedIntGenerator, error) {
	if check.IfNil(arg.Randomizer) {
		return nil, ErrNilRandomizer
	}
	err := core.CheckRange(arg.Min, arg.Max)
	if err != nil {
		return nil, err
	}

	return &boundedIntGenerator{
		randomizer:     arg.Randomizer,
		randomizerType: arg.RandomizerType,
		min:            arg.Min,
		max:            arg.Max,
	}, nil
}

// Generate returns one number in the configured range
func (bg *boundedIntGenerator) Generate() (int64, error) {
	return ComputeBoundedInt(bg.randomizer, bg.min, bg.max)
}

// GenerateMany returns count numbers in the configured range
func (bg *boundedIntGenerator) GenerateMany(count int) (*data.GeneratorOutput, error) {
	if count < 1 || count > core.MaxNumbersToGenerate {
		return nil, fmt.Errorf("%w for count: %d, allowed range [1, %d]", ErrInvalidValue, count, core.MaxNumbersToGenerate)
	}

	output := &data.GeneratorOutput{
		Min:        bg.min,
		Max:        bg.max,
		Randomizer: bg.randomizerType,
		Numbers:    make([]int64, 0, count),
	}
	for i := 0; i < count; i++ {
		n, err := bg.Generate()
		if err != nil {
			return nil, err
		}

		output.Numbers = append(output.Numbers, n)
	}

	log.Debug("generated numbers", "count", count, "min", bg.min, "max", bg.max)

	return output, nil
}

// Min returns the inclusive lower bound
func (bg *boundedIntGenerator) Min() int64 {
	return bg.min
}

// Max returns the inclusive upper bound
func (bg *boundedIntGenerator) Max() int64 {
	return bg.max
}

// IsInterfaceNil returns true if there is no value under the interface
func (bg *boundedIntGenerator) IsInterfaceNil() bool {
	return bg == nil
}
