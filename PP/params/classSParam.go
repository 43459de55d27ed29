package params

var ClassS = Class{
	Name:         "S",
	NumStrings:   1000,
	StringLength: 100,
	Seed:         defaultSeed(),
	Repetitions: map[string]int{
		"map":          5,
		"set":          5,
		"array":        20,
		"bitmask":      50,
		"popcount":     50,
		RepStrings:     100,
		RepFlat:        100,
		RepFlatThreads: 100,
	},
	Threads: []int{0, 2},
}
