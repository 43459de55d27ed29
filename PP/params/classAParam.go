package params

var ClassA = Class{
	Name:         "A",
	NumStrings:   100000,
	StringLength: 1000,
	Seed:         defaultSeed(),
	Repetitions: map[string]int{
		"map":          2,
		"set":          2,
		"array":        15,
		"bitmask":      50,
		"popcount":     50,
		RepStrings:     100,
		RepFlat:        130,
		RepFlatThreads: 150,
	},
	Threads: []int{0, 6},
}
