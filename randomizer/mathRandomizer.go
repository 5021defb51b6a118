package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

type mathRandomizer struct {
	mut sync.Mutex
	rnd *rand.Rand
}

// NewMathRandomizer creates a math/rand backed randomizer. A zero seed means a time based seed
func NewMathRandomizer(seed int64) *mathRandomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &mathRandomizer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a pseudo-random number in [0, 1)
func (mr *mathRandomizer) Float64() float64 {
	mr.mut.Lock()
	defer mr.mut.Unlock()

	return mr.rnd.Float64()
}

// IsInterfaceNil returns true if there is no value under the interface
func (mr *mathRandomizer) IsInterfaceNil() bool {
	return mr == nil
}
