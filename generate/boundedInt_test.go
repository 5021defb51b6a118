package generate

import (
	"errors"
	"math"
	"testing"

	"github.com/ElrondNetwork/elrond-randgen-go/core"
	"github.com/ElrondNetwork/elrond-randgen-go/mock"
	"github.com/ElrondNetwork/elrond-randgen-go/randomizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFixedRandomizer(value float64) *mock.FloatRandomizerStub {
	return &mock.FloatRandomizerStub{
		Float64Called: func() float64 {
			return value
		},
	}
}

func TestComputeBoundedInt_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil randomizer should error", func(t *testing.T) {
		t.Parallel()

		n, err := ComputeBoundedInt(nil, 1, 100)
		assert.Equal(t, int64(0), n)
		assert.Equal(t, ErrNilRandomizer, err)
	})
	t.Run("min greater than max should error", func(t *testing.T) {
		t.Parallel()

		n, err := ComputeBoundedInt(createFixedRandomizer(0.5), 20, 10)
		assert.Equal(t, int64(0), n)
		assert.True(t, errors.Is(err, core.ErrInvalidRange))
	})
	t.Run("random value outside [0, 1) should error", func(t *testing.T) {
		t.Parallel()

		for _, value := range []float64{-0.1, 1, 1.5, math.NaN(), math.Inf(1)} {
			n, err := ComputeBoundedInt(createFixedRandomizer(value), 1, 100)
			assert.Equal(t, int64(0), n)
			assert.True(t, errors.Is(err, ErrInvalidRandomValue))
		}
	})
}

func TestComputeBoundedInt_SingleValueRanges(t *testing.T) {
	t.Parallel()

	rnd := randomizer.NewMathRandomizer(0)
	for i := 0; i < 1000; i++ {
		n, err := ComputeBoundedInt(rnd, 1, 1)
		require.Nil(t, err)
		assert.Equal(t, int64(1), n)

		n, err = ComputeBoundedInt(rnd, 5, 5)
		require.Nil(t, err)
		assert.Equal(t, int64(5), n)
	}
}

func TestComputeBoundedInt_KnownDraws(t *testing.T) {
	t.Parallel()

	justBelowOne := math.Nextafter(1, 0)

	n, err := ComputeBoundedInt(createFixedRandomizer(0), 10, 20)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), n)

	n, err = ComputeBoundedInt(createFixedRandomizer(justBelowOne), 10, 20)
	assert.Nil(t, err)
	assert.Equal(t, int64(20), n)

	n, err = ComputeBoundedInt(createFixedRandomizer(0.5), 1, 100)
	assert.Nil(t, err)
	assert.Equal(t, int64(51), n)

	n, err = ComputeBoundedInt(createFixedRandomizer(0.5), -10, -1)
	assert.Nil(t, err)
	assert.Equal(t, int64(-5), n)
}

func TestComputeBoundedInt_FullInt64Range(t *testing.T) {
	t.Parallel()

	justBelowOne := math.Nextafter(1, 0)

	n, err := ComputeBoundedInt(createFixedRandomizer(0), math.MinInt64, math.MaxInt64)
	assert.Nil(t, err)
	assert.Equal(t, int64(math.MinInt64), n)

	n, err = ComputeBoundedInt(createFixedRandomizer(justBelowOne), math.MinInt64, math.MaxInt64)
	assert.Nil(t, err)
	assert.True(t, n > 0)

	n, err = ComputeBoundedInt(createFixedRandomizer(justBelowOne), math.MaxInt64-1, math.MaxInt64)
	assert.Nil(t, err)
	assert.Equal(t, int64(math.MaxInt64), n)
}

func TestComputeBoundedInt_RangeProperty(t *testing.T) {
	t.Parallel()

	rnd := randomizer.NewMathRandomizer(42)
	ranges := [][2]int64{{0, 0}, {1, 100}, {-50, 50}, {-1000, -999}, {math.MaxInt64 - 10, math.MaxInt64}}
	for _, r := range ranges {
		for i := 0; i < 1000; i++ {
			n, err := ComputeBoundedInt(rnd, r[0], r[1])
			require.Nil(t, err)
			assert.True(t, n >= r[0] && n <= r[1], "value %d outside [%d, %d]", n, r[0], r[1])
		}
	}
}

func TestComputeBoundedInt_DistributionCoverage(t *testing.T) {
	t.Parallel()

	rnd := randomizer.NewMathRandomizer(0)
	seen := make(map[int64]int)
	numDraws := 100000
	for i := 0; i < numDraws; i++ {
		n, err := ComputeBoundedInt(rnd, 1, 100)
		require.Nil(t, err)
		require.True(t, n >= 1 && n <= 100)

		seen[n]++
	}

	assert.Equal(t, 100, len(seen))
	for i := int64(1); i <= 100; i++ {
		assert.Greater(t, seen[i], 0)
	}
}
