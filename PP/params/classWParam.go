package params

var ClassW = Class{
	Name:         "W",
	NumStrings:   10000,
	StringLength: 1000,
	Seed:         defaultSeed(),
	Repetitions: map[string]int{
		"map":          2,
		"set":          2,
		"array":        10,
		"bitmask":      30,
		"popcount":     30,
		RepStrings:     50,
		RepFlat:        60,
		RepFlatThreads: 70,
	},
	Threads: []int{0, 4},
}
