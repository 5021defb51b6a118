package generate

// FloatRandomizer provides uniformly distributed real numbers in the half-open interval [0, 1)
type FloatRandomizer interface {
	Float64() float64
	IsInterfaceNil() bool
}
