package progress

import "github.com/abhisek/quizdrill/internal/question"

// State is the persistent progress of a learner across sessions.
//
// An id is never in both Answered and Failed. Marked ids are excluded from
// every freshly loaded pool but marking leaves Answered and Failed as they
// were.
type State struct {
	// Answered holds questions answered correctly since the last reset.
	Answered *Set

	// Failed holds questions whose most recent answer was wrong.
	Failed *Set

	// Marked holds questions the learner never wants to see again.
	Marked *Set

	// LastQuestionCount is the round size the learner picked last time
	// (0 if never asked).
	LastQuestionCount int
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		Answered: NewSet(),
		Failed:   NewSet(),
		Marked:   NewSet(),
	}
}

// RecordCorrect moves q into Answered.
func (st *State) RecordCorrect(q question.Question) {
	st.Answered.Add(q)
	st.Failed.Remove(q.ID)
}

// RecordWrong moves q into Failed.
func (st *State) RecordWrong(q question.Question) {
	st.Failed.Add(q)
	st.Answered.Remove(q.ID)
}

// Mark excludes q from future pools.
func (st *State) Mark(q question.Question) {
	st.Marked.Add(q)
}

// Reset clears answer history and keeps marks.
func (st *State) Reset() {
	st.Answered.Clear()
	st.Failed.Clear()
}

// ResetAll clears everything, marks included.
func (st *State) ResetAll() {
	st.Reset()
	st.Marked.Clear()
}

// reconcile restores the Answered/Failed exclusion on state read from disk.
func (st *State) reconcile() int {
	var dropped int
	for _, id := range st.Failed.IDs() {
		if st.Answered.Contains(id) {
			st.Failed.Remove(id)
			dropped++
		}
	}
	return dropped
}
