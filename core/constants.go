package core

// MathRandomizerType is the math/rand backed randomizer
const MathRandomizerType = "math"

// CryptoRandomizerType is the crypto/rand backed randomizer
const CryptoRandomizerType = "crypto"

// FixedRandomizerType is the randomizer that always returns the same draw
const FixedRandomizerType = "fixed"

// DefaultMinValue is the inclusive lower bound used when none is provided
const DefaultMinValue = 1

// DefaultMaxValue is the inclusive upper bound used when none is provided
const DefaultMaxValue = 100

// GeneratedNumberLabel prefixes every number written on the console
const GeneratedNumberLabel = "Generated random number:"

// MaxNumbersToGenerate caps the number of values produced in one run
const MaxNumbersToGenerate = 1000000
