package bankio

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/abhisek/quizdrill/internal/question"
)

// SortQuestions orders multiple-choice questions before true/false ones,
// then by id.
func SortQuestions(qs []question.Question) []question.Question {
	out := slices.Clone(qs)
	slices.SortStableFunc(out, func(a, b question.Question) int {
		if a.Kind != b.Kind {
			if a.Kind == question.KindMultipleChoice {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// WriteBank writes qs as a bank file, sorted, with two-space indentation.
// The encoded document is checked against the bank schema before it is
// written.
func WriteBank(w io.Writer, qs []question.Question) error {
	raw, err := json.MarshalIndent(nonNil(SortQuestions(qs)), "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	if err := question.Validate(raw); err != nil {
		return fmt.Errorf("generated bank is invalid: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}

func nonNil(qs []question.Question) []question.Question {
	if qs == nil {
		return []question.Question{}
	}
	return qs
}
