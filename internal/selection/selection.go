// Package selection implements the two-stage menu that narrows the question
// pool before a round: first by question type, then by answer history.
package selection

import (
	"fmt"

	"github.com/abhisek/quizdrill/internal/console"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
	"github.com/abhisek/quizdrill/internal/ui/components"
)

// Signal is a control command returned instead of a question subset.
type Signal int

const (
	SignalNone     Signal = iota // Questions holds the chosen subset
	SignalExit                   // leave the program
	SignalReset                  // clear answered/failed, keep marks
	SignalResetAll               // clear everything
	SignalBack                   // return to type selection
)

func (s Signal) String() string {
	switch s {
	case SignalExit:
		return "exit"
	case SignalReset:
		return "reset"
	case SignalResetAll:
		return "reset-all"
	case SignalBack:
		return "back"
	}
	return "none"
}

// Choice is the outcome of a menu stage: either a non-empty subset or a
// signal.
type Choice struct {
	Questions []question.Question
	Signal    Signal
}

// Menu keys.
const (
	KeyTrueFalse      = "1"
	KeyMultipleChoice = "2"
	KeyMixed          = "3"
	KeyReset          = "r"
	KeyResetAll       = "R"
	KeyExit           = "q"

	KeyFailedOnly = "1"
	KeyAll        = "2"
	KeyBack       = "b"
)

// Available computes the pool offered at type selection: loaded questions
// not yet answered, plus every failed question. A failed entry replaces a
// loaded one with the same id. Marked ids never make it into the pool.
func Available(loaded []question.Question, st *progress.State) []question.Question {
	failed := st.Failed.Questions()
	out := make([]question.Question, 0, len(loaded)+len(failed))
	seen := make(map[string]bool, len(loaded)+len(failed))

	for _, q := range loaded {
		if st.Answered.Contains(q.ID) || st.Failed.Contains(q.ID) || st.Marked.Contains(q.ID) {
			continue
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	for _, q := range failed {
		if seen[q.ID] || st.Marked.Contains(q.ID) || q.ID == question.BlockedID {
			continue
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out
}

// FailedWithin returns the failed questions whose id is in subset, in
// failed order.
func FailedWithin(subset []question.Question, failed *progress.Set) []question.Question {
	in := make(map[string]question.Question, len(subset))
	for _, q := range subset {
		in[q.ID] = q
	}
	var out []question.Question
	for _, id := range failed.IDs() {
		if q, ok := in[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

type entry struct {
	questions []question.Question
	signal    Signal
}

// prompt shows menu until an enabled key is entered. Closed input yields
// onEOF.
func prompt(p console.Prompter, menu components.Menu, entries []entry, label string, onEOF Signal) Choice {
	for {
		p.Println()
		p.Heading(menu.Title)
		p.Println(menu.View())

		input, ok := p.ReadLine(label)
		if !ok {
			return Choice{Signal: onEOF}
		}
		i, ok := menu.Lookup(input)
		if !ok {
			p.Println("Invalid choice, please try again.")
			continue
		}
		e := entries[i]
		return Choice{Questions: e.questions, Signal: e.signal}
	}
}

// SelectType runs stage A over the available pool.
func SelectType(p console.Prompter, available []question.Question) Choice {
	trueFalse := question.FilterKind(available, question.KindTrueFalse)
	multipleChoice := question.FilterKind(available, question.KindMultipleChoice)

	entries := []entry{
		{questions: trueFalse},
		{questions: multipleChoice},
		{questions: available},
		{signal: SignalReset},
		{signal: SignalResetAll},
		{signal: SignalExit},
	}
	menu := components.NewMenu("=== Step 1: question type ===", []components.MenuItem{
		{Key: KeyTrueFalse, Label: fmt.Sprintf("True/false (%d)", len(trueFalse)), Disabled: len(trueFalse) == 0},
		{Key: KeyMultipleChoice, Label: fmt.Sprintf("Multiple choice (%d)", len(multipleChoice)), Disabled: len(multipleChoice) == 0},
		{Key: KeyMixed, Label: fmt.Sprintf("Mixed (%d)", len(available)), Disabled: len(available) == 0},
		{Key: KeyReset, Label: "reset: clear answered/failed history, keep marked questions"},
		{Key: KeyResetAll, Label: "reset-all: clear all history including marked questions"},
		{Key: KeyExit, Label: "Quit"},
	})

	return prompt(p, menu, entries, "Choose a question type: ", SignalExit)
}

// SelectHistory runs stage B over the subset picked in stage A.
func SelectHistory(p console.Prompter, subset []question.Question, failed *progress.Set) Choice {
	failedOnly := FailedWithin(subset, failed)

	entries := []entry{
		{questions: failedOnly},
		{questions: subset},
		{signal: SignalBack},
	}
	menu := components.NewMenu("=== Step 2: scope ===", []components.MenuItem{
		{Key: KeyFailedOnly, Label: fmt.Sprintf("Only previously failed questions (%d)", len(failedOnly)), Disabled: len(failedOnly) == 0},
		{Key: KeyAll, Label: fmt.Sprintf("All available questions (%d)", len(subset)), Disabled: len(subset) == 0},
		{Key: KeyBack, Label: "Back to question type"},
	})

	return prompt(p, menu, entries, "Choose a scope: ", SignalBack)
}
