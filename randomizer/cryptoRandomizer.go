package randomizer

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"

	logger "github.com/ElrondNetwork/elrond-go-logger"
)

var log = logger.GetOrCreate("randomizer")

const float64MantissaBits = 53

type cryptoRandomizer struct {
	reader io.Reader
}

// NewCryptoRandomizer creates a randomizer reading its entropy from crypto/rand
func NewCryptoRandomizer() *cryptoRandomizer {
	return &cryptoRandomizer{
		reader: rand.Reader,
	}
}

// Float64 returns a random number in [0, 1) built from 53 random bits. A failed read yields NaN
func (cr *cryptoRandomizer) Float64() float64 {
	buff := make([]byte, 8)
	_, err := io.ReadFull(cr.reader, buff)
	if err != nil {
		log.Error("cannot read random bytes", "error", err)
		return math.NaN()
	}

	bits := binary.BigEndian.Uint64(buff) >> (64 - float64MantissaBits)

	return float64(bits) / float64(uint64(1)<<float64MantissaBits)
}

// IsInterfaceNil returns true if there is no value under the interface
func (cr *cryptoRandomizer) IsInterfaceNil() bool {
	return cr == nil
}
