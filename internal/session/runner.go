// Package session runs a single quiz round: it shuffles the selected
// questions, grades each answer, and persists progress after every
// question so an interrupted round loses at most the question in flight.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizdrill/internal/console"
	"github.com/abhisek/quizdrill/internal/logger"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
	"github.com/abhisek/quizdrill/internal/store"
	"github.com/abhisek/quizdrill/internal/ui/layout"
)

// Round event actions recorded in the journal.
const (
	ActionStart  = "start"
	ActionFinish = "finish"
	ActionQuit   = "quit"
)

var answerHints = []layout.KeyHint{
	{Key: InputMark, Description: "mark this question so it never appears again"},
	{Key: InputUnknown, Description: "don't know, show the answer and add it to failed questions"},
	{Key: InputQuit, Description: "back to the main menu"},
}

// Runner drives one round at a time against a shared progress state.
type Runner struct {
	io     console.Prompter
	state  *progress.State
	saver  progress.Saver
	events store.EventRepo
	rng    *rand.Rand
	limit  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithRand sets the shuffle source.
func WithRand(rng *rand.Rand) Option {
	return func(r *Runner) { r.rng = rng }
}

// WithEvents journals rounds and answers to repo.
func WithEvents(repo store.EventRepo) Option {
	return func(r *Runner) { r.events = repo }
}

// WithLimit truncates each shuffled round to n questions (0 = no limit).
func WithLimit(n int) Option {
	return func(r *Runner) { r.limit = n }
}

// NewRunner creates a Runner. The state is mutated in place and handed to
// saver after every question.
func NewRunner(p console.Prompter, st *progress.State, saver progress.Saver, opts ...Option) *Runner {
	r := &Runner{io: p, state: st, saver: saver}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run quizzes the learner on qs. It returns false if the learner quit
// before the last question.
func (r *Runner) Run(ctx context.Context, qs []question.Question) (bool, Summary) {
	sum := Summary{RoundID: uuid.New().String()}
	if len(qs) == 0 {
		r.io.Println("No questions available for this quiz.")
		sum.Completed = true
		return true, sum
	}

	quiz := Shuffle(qs, r.rng)
	if r.limit > 0 && r.limit < len(quiz) {
		quiz = quiz[:r.limit]
	}
	sum.Total = len(quiz)
	r.appendRound(ctx, sum, ActionStart)

	for i, q := range quiz {
		r.present(i+1, len(quiz), q)

		input, ok := r.io.ReadLine("Your answer: ")
		outcome := OutcomeQuit
		if ok {
			outcome = Classify(q, input)
		}

		if outcome == OutcomeQuit {
			r.reportPartial(sum.Tally)
			r.io.Println("\nBack to the main menu...")
			r.appendRound(ctx, sum, ActionQuit)
			return false, sum
		}

		sum.Tally.Record(outcome)
		r.apply(q, outcome)
		r.feedback(q, outcome)
		r.persist()
		r.appendAnswer(ctx, sum.RoundID, q, input, outcome)
	}

	sum.Completed = true
	r.reportComplete(sum)
	r.appendRound(ctx, sum, ActionFinish)
	return true, sum
}

// apply updates the progress sets for outcome.
func (r *Runner) apply(q question.Question, outcome Outcome) {
	switch outcome {
	case OutcomeMarked:
		r.state.Mark(q)
	case OutcomeUnknown, OutcomeWrong:
		r.state.RecordWrong(q)
	case OutcomeCorrect:
		r.state.RecordCorrect(q)
	}
}

func (r *Runner) persist() {
	if err := r.saver.Save(r.state); err != nil {
		logger.Get().Warn("could not save progress, continuing with in-memory state", zap.Error(err))
	}
}

func (r *Runner) present(n, total int, q question.Question) {
	styles := r.io.Styles()
	r.io.Println()
	r.io.Println(styles.Question.Render(fmt.Sprintf("Question %d/%d: %s", n, total, q.Text)))

	if q.IsTrueFalse() {
		r.io.Println("  (1) True (O)")
		r.io.Println("  (2) False (X)")
		r.io.Println("  or answer O/o or X/x directly")
	} else {
		for _, opt := range q.Options {
			r.io.Printf("  (%s) %s\n", opt.Key, opt.Label)
		}
	}

	for _, line := range layout.RenderHints(answerHints) {
		r.io.Hint(line)
	}
}

func (r *Runner) feedback(q question.Question, outcome Outcome) {
	switch outcome {
	case OutcomeMarked:
		r.io.Println("Marked: this question will not appear again.")
		r.io.Printf("The correct answer is: %s\n", answerText(q))
	case OutcomeUnknown:
		r.io.Println("Don't know...")
		r.io.Printf("The correct answer is: %s\n", answerText(q))
	case OutcomeCorrect:
		r.io.Correct("✔ Correct!")
	case OutcomeWrong:
		r.io.Incorrect("✘ Wrong!")
		r.io.Printf("The correct answer is: %s\n", answerText(q))
	}
	if q.ShowsExplanation() {
		r.io.Explanation("Explanation: " + q.Explanation)
	}
}

// answerText renders the answer key together with its option label.
func answerText(q question.Question) string {
	if label, ok := q.Options.Label(q.CorrectAnswer); ok {
		return fmt.Sprintf("%s (%s)", q.CorrectAnswer, label)
	}
	return q.CorrectAnswer
}

func (r *Runner) reportPartial(t Tally) {
	if t.Answered() == 0 {
		return
	}
	r.io.Println()
	r.io.Heading("--- Round result ---")
	r.io.Printf("Answered: %d\n", t.Answered())
	r.io.Printf("Correct: %d\n", t.Correct)
	r.io.Printf("Wrong: %d\n", t.Wrong)
	r.io.Printf("Accuracy: %d%%\n", t.Percent())
}

func (r *Runner) reportComplete(sum Summary) {
	t := sum.Tally
	r.io.Println()
	r.io.Heading("--- Quiz finished! ---")
	r.io.Printf("Total questions: %d\n", sum.Total)
	r.io.Printf("Correct: %d\n", t.Correct)
	r.io.Printf("Wrong: %d\n", t.Wrong)
	if t.Answered() > 0 {
		r.io.Printf("Accuracy: %d%%\n", t.Percent())
	}
	if t.Marked > 0 {
		r.io.Printf("Marked: %d\n", t.Marked)
	}
}

func (r *Runner) appendRound(ctx context.Context, sum Summary, action string) {
	if r.events == nil {
		return
	}
	err := r.events.AppendRoundEvent(ctx, store.RoundEventData{
		RoundID: sum.RoundID,
		Action:  action,
		Total:   sum.Total,
		Correct: sum.Tally.Correct,
		Wrong:   sum.Tally.Wrong,
		Marked:  sum.Tally.Marked,
	})
	if err != nil {
		logger.Get().Warn("failed to journal round event", zap.String("action", action), zap.Error(err))
	}
}

func (r *Runner) appendAnswer(ctx context.Context, roundID string, q question.Question, input string, outcome Outcome) {
	if r.events == nil {
		return
	}
	err := r.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		RoundID:       roundID,
		QuestionID:    q.ID,
		QuestionKind:  string(q.Kind),
		CorrectAnswer: q.CorrectAnswer,
		Response:      input,
		Outcome:       outcome.String(),
		Correct:       outcome == OutcomeCorrect,
	})
	if err != nil {
		logger.Get().Warn("failed to journal answer event", zap.String("question_id", q.ID), zap.Error(err))
	}
}
