package session

import (
	"strings"

	"github.com/abhisek/quizdrill/internal/question"
)

// Outcome classifies one line of input against a question.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeUnknown // "?": reveal and count as wrong
	OutcomeMarked  // "-": never show again, not scored
	OutcomeQuit    // "q": end the round
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeMarked:
		return "marked"
	case OutcomeQuit:
		return "quit"
	}
	return "invalid"
}

// Scored reports whether the outcome counts toward the round tally.
func (o Outcome) Scored() bool {
	return o == OutcomeCorrect || o == OutcomeWrong || o == OutcomeUnknown
}

// Control inputs.
const (
	InputQuit    = "q"
	InputMark    = "-"
	InputUnknown = "?"
)

// NormalizeAnswer uppercases input and, for true/false questions, maps the
// numeric shorthand 1 and 2 onto O and X.
func NormalizeAnswer(q question.Question, input string) string {
	if q.IsTrueFalse() {
		switch input {
		case "1":
			return question.AnswerTrue
		case "2":
			return question.AnswerFalse
		}
	}
	return strings.ToUpper(input)
}

// Classify interprets input for q. Control commands are recognized before
// the answer is compared; anything else is graded.
func Classify(q question.Question, input string) Outcome {
	switch {
	case strings.EqualFold(input, InputQuit):
		return OutcomeQuit
	case input == InputMark:
		return OutcomeMarked
	case input == InputUnknown:
		return OutcomeUnknown
	}
	if NormalizeAnswer(q, input) == strings.ToUpper(q.CorrectAnswer) {
		return OutcomeCorrect
	}
	return OutcomeWrong
}
