package selection

import (
	"fmt"
	"strconv"

	"github.com/abhisek/quizdrill/internal/console"
)

// DefaultRoundSize is offered when the learner has never picked a size.
const DefaultRoundSize = 20

// AskCount asks how many of max questions to put in the round. Empty or
// invalid input falls back to the last choice, or DefaultRoundSize capped
// at max.
func AskCount(p console.Prompter, max, last int) int {
	if max <= 0 {
		return 0
	}
	def := min(DefaultRoundSize, max)
	if last >= 1 && last <= max {
		def = last
	}

	p.Printf("\nHow many questions? (1 to %d)\n", max)
	if last > 0 {
		p.Printf("Last time: %d\n", last)
	}
	input, ok := p.ReadLine(fmt.Sprintf("Number of questions [default %d]: ", def))
	if !ok || input == "" {
		return def
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > max {
		p.Printf("Invalid count, using %d.\n", def)
		return def
	}
	return n
}
