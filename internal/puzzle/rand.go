package puzzle

// Rand is the random source used by scrambles. *math/rand.Rand satisfies it;
// tests can supply scripted implementations.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// DefaultMaxScrambleAttempts bounds every re-roll loop in the variants.
const DefaultMaxScrambleAttempts = 64
