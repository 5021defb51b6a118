package disabled

// FixedRandomizer is an implementation of the FloatRandomizer interface that always returns the same draw
type FixedRandomizer struct {
	Value float64
}

// Float64 returns the configured value
func (fr *FixedRandomizer) Float64() float64 {
	return fr.Value
}

// IsInterfaceNil returns true if there is no value under the interface
func (fr *FixedRandomizer) IsInterfaceNil() bool {
	return fr == nil
}
