package mock

// FloatRandomizerStub -
type FloatRandomizerStub struct {
	Float64Called func() float64
}

// Float64 -
func (frs *FloatRandomizerStub) Float64() float64 {
	if frs.Float64Called != nil {
		return frs.Float64Called()
	}

	return 0
}

// IsInterfaceNil -
func (frs *FloatRandomizerStub) IsInterfaceNil() bool {
	return frs == nil
}
