package progress

import "github.com/abhisek/quizdrill/internal/question"

// Set is an id-keyed collection of questions that remembers insertion order.
type Set struct {
	order []string
	byID  map[string]question.Question
}

// NewSet creates a set holding qs. Later duplicates of an id are ignored.
func NewSet(qs ...question.Question) *Set {
	s := &Set{byID: make(map[string]question.Question, len(qs))}
	for _, q := range qs {
		s.Add(q)
	}
	return s
}

// Add inserts q and reports whether its id was absent.
func (s *Set) Add(q question.Question) bool {
	if _, ok := s.byID[q.ID]; ok {
		return false
	}
	s.byID[q.ID] = q
	s.order = append(s.order, q.ID)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *Set) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.order)
}

// Questions returns the members in insertion order.
func (s *Set) Questions() []question.Question {
	out := make([]question.Question, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// IDs returns the member ids in insertion order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Set) Clear() {
	s.order = nil
	s.byID = make(map[string]question.Question)
}
