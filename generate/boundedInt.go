package generate

import (
	"fmt"
	"math"

	"github.com/ElrondNetwork/elrond-go-core/core/check"
	"github.com/ElrondNetwork/elrond-randgen-go/core"
)

// ComputeBoundedInt draws a real value r in [0, 1) and maps it onto the inclusive
// range [min, max] as floor(r * (max - min + 1)) + min
func ComputeBoundedInt(randomizer FloatRandomizer, min int64, max int64) (int64, error) {
	if check.IfNil(randomizer) {
		return 0, ErrNilRandomizer
	}
	err := core.CheckRange(min, max)
	if err != nil {
		return 0, err
	}

	r := randomizer.Float64()
	if math.IsNaN(r) || r < 0 || r >= 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRandomValue, r)
	}

	// unsigned difference stays exact even when max - min overflows int64
	delta := uint64(max - min)
	offset := uint64(r * (float64(delta) + 1))
	if offset > delta {
		offset = delta
	}

	return min + int64(offset), nil
}
