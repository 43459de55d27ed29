package params

// ClassB is the reference configuration: one million strings of 1000
// letters.
var ClassB = Class{
	Name:         "B",
	NumStrings:   1000000,
	StringLength: 1000,
	Seed:         defaultSeed(),
	Repetitions: map[string]int{
		"map":          5,
		"set":          5,
		"array":        150,
		"bitmask":      500,
		"popcount":     500,
		RepStrings:     1000,
		RepFlat:        1300,
		RepFlatThreads: 1500,
	},
	Threads: []int{0, 6},
}
