package game

import "math/rand/v2"

// Rand is the randomness the game needs. *rand.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source. Equal seeds give equal games.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Score compares guess against secret.
//
// Exact pass first, then every remaining peg is Partial when its colour
// appears anywhere in the secret. Secret colours already matched exactly are
// not consumed, so a secret with repeated colours can over-count Partial.
// RandomCode never produces such a secret.
//
// The markers are shuffled before returning so the slot order leaks nothing.
func Score(guess, secret Code, rng Rand) Feedback {
	var fb Feedback

	for i := 0; i < CodeLen; i++ {
		if guess[i] == secret[i] {
			fb[i] = Exact
		}
	}

	for i := 0; i < CodeLen; i++ {
		if fb[i] == None && secret.Contains(guess[i]) {
			fb[i] = Partial
		}
	}

	rng.Shuffle(len(fb), func(i, j int) { fb[i], fb[j] = fb[j], fb[i] })
	return fb
}
