// Package app is the trainer controller: it loops over progress display,
// type selection, control signals, scope selection and quiz rounds until
// the learner exits.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/abhisek/quizdrill/internal/console"
	"github.com/abhisek/quizdrill/internal/logger"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/question"
	"github.com/abhisek/quizdrill/internal/selection"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/store"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
)

// ProgressStore loads and saves the learner's progress.
type ProgressStore interface {
	Load() *progress.State
	progress.Saver
}

// Options holds the dependencies of a trainer run.
type Options struct {
	Bank     *question.Bank
	Progress ProgressStore
	Console  console.Prompter

	// Events is optional; nil disables the journal.
	Events store.EventRepo

	// RoundSize truncates each round (0 = whole subset). Ignored when
	// AskCount is set.
	RoundSize int
	AskCount  bool

	// Rand seeds the shuffle; nil uses the global source.
	Rand *rand.Rand
}

// Run drives the trainer until the learner exits or input ends. It fails
// only when the question bank cannot be loaded.
func Run(ctx context.Context, opts Options) error {
	p := opts.Console
	st := opts.Progress.Load()

	p.Println(layout.RenderBanner(p.Styles(), "quizdrill", opts.Bank.Path()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		loaded, err := opts.Bank.Load(st.Marked)
		if err != nil {
			return err
		}

		available := selection.Available(loaded, st)
		showProgress(p, loaded, available, st)

		if len(available) == 0 {
			p.Println()
			p.Correct("🎉 Congratulations! You have finished every question!")
			p.Println("Choose reset to start over.")
		}

		typeChoice := selection.SelectType(p, available)
		switch typeChoice.Signal {
		case selection.SignalExit:
			p.Println("Quiz over, thanks for practicing.")
			return nil
		case selection.SignalReset:
			p.Println("Resetting answered/failed history (marks kept)...")
			st.Reset()
			save(opts.Progress, st)
			p.Println("History cleared; marked questions still stay hidden.")
			continue
		case selection.SignalResetAll:
			p.Println("Resetting all history (including marks)...")
			st.ResetAll()
			save(opts.Progress, st)
			p.Println("All history cleared; every question is available again.")
			continue
		}

		scope := selection.SelectHistory(p, typeChoice.Questions, st.Failed)
		if scope.Signal == selection.SignalBack {
			continue
		}

		limit := opts.RoundSize
		if opts.AskCount {
			limit = selection.AskCount(p, len(scope.Questions), st.LastQuestionCount)
			st.LastQuestionCount = limit
		}

		runOpts := []session.Option{session.WithLimit(limit)}
		if opts.Rand != nil {
			runOpts = append(runOpts, session.WithRand(opts.Rand))
		}
		if opts.Events != nil {
			runOpts = append(runOpts, session.WithEvents(opts.Events))
		}
		runner := session.NewRunner(p, st, opts.Progress, runOpts...)
		completed, sum := runner.Run(ctx, scope.Questions)

		logger.Get().Debug("round ended",
			zap.String("round_id", sum.RoundID),
			zap.Bool("completed", completed),
			zap.Int("correct", sum.Tally.Correct),
			zap.Int("wrong", sum.Tally.Wrong))

		save(opts.Progress, st)
	}
}

func save(s progress.Saver, st *progress.State) {
	if err := s.Save(st); err != nil {
		logger.Get().Warn("could not save progress", zap.Error(err))
	}
}

// showProgress prints the counts for the current pool. Failed questions
// count only while they are still offered, matching the failed-only scope.
func showProgress(p console.Prompter, loaded, available []question.Question, st *progress.State) {
	answered := 0
	remaining := 0
	for _, q := range loaded {
		if st.Answered.Contains(q.ID) {
			answered++
		} else {
			remaining++
		}
	}

	p.Println()
	p.Heading("=== Progress ===")
	p.Printf("Available questions: %d\n", len(loaded))
	p.Printf("Marked as never again: %d\n", st.Marked.Len())
	p.Printf("Answered correctly: %d\n", st.Answered.Len())
	p.Printf("Failed, to retry: %d\n", len(selection.FailedWithin(available, st.Failed)))
	p.Printf("Not yet answered: %d\n", remaining)

	if len(loaded) > 0 {
		bar := components.NewProgressBar("Mastered", float64(answered)/float64(len(loaded)), true, 20)
		p.Println(bar.View(p.Styles()))
	}
}

// Summary renders a one-line progress summary, used by non-interactive
// commands.
func Summary(loaded []question.Question, st *progress.State) string {
	return fmt.Sprintf("%d questions, %d answered, %d failed, %d marked",
		len(loaded), st.Answered.Len(), st.Failed.Len(), st.Marked.Len())
}
