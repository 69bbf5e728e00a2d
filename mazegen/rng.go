package mazegen

import "math/rand"

// defaultSeed replaces a zero Config.Seed.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 uses defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
