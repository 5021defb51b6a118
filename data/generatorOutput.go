package data

// GeneratorOutput represents the structure that will contain aggregated generated data
type GeneratorOutput struct {
	Min        int64   `json:"min"`
	Max        int64   `json:"max"`
	Randomizer string  `json:"randomizer"`
	Numbers    []int64 `json:"numbers"`
}
