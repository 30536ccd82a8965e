package session

import "math"

// Tally counts outcomes within a single round.
type Tally struct {
	Asked   int // questions shown, including marked ones
	Correct int
	Wrong   int
	Marked  int
}

// Record adds a classified outcome to the tally.
func (t *Tally) Record(o Outcome) {
	switch o {
	case OutcomeCorrect:
		t.Asked++
		t.Correct++
	case OutcomeWrong, OutcomeUnknown:
		t.Asked++
		t.Wrong++
	case OutcomeMarked:
		t.Asked++
		t.Marked++
	}
}

// Answered is the number of scored answers.
func (t Tally) Answered() int {
	return t.Correct + t.Wrong
}

// Accuracy is Correct / Answered (0 when nothing was answered).
func (t Tally) Accuracy() float64 {
	if t.Answered() == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Answered())
}

// Percent is Accuracy rounded to a whole percentage.
func (t Tally) Percent() int {
	return int(math.Round(t.Accuracy() * 100))
}

// Summary is reported at the end of a round.
type Summary struct {
	RoundID   string
	Total     int // size of the round after shuffling and truncation
	Tally     Tally
	Completed bool
}
