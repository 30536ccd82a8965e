package session

import (
	"math/rand/v2"

	"github.com/abhisek/quizdrill/internal/question"
)

// Shuffle returns a uniformly permuted copy of qs (Fisher–Yates). rng may be
// nil to use the global source.
func Shuffle(qs []question.Question, rng *rand.Rand) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)
	for i := len(out) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}
