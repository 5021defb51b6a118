package generate

// ArgBoundedIntGenerator is the argument used to create a bounded integer generator
type ArgBoundedIntGenerator struct {
	Randomizer     FloatRandomizer
	RandomizerType string
	Min            int64
	Max            int64
}
