package grid

// Rand is the random source threaded through every generation phase.
// *math/rand.Rand satisfies it; tests substitute fixed sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Shuffle performs a Fisher-Yates shuffle of n elements using rng.
func Shuffle(rng Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		swap(i, j)
	}
}

// ShuffledDirs returns the four directions in random order.
func ShuffledDirs(rng Rand) [4]Dir {
	dirs := Dirs
	Shuffle(rng, len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return dirs
}
