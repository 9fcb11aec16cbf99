package quiz

import (
	"fmt"
	"slices"
)

// Unanswered marks a slot the learner has not filled yet.
const Unanswered = -1

// Attempt holds a learner's selections for one sitting of a quiz.
// It is a value: Select returns a new Attempt and never mutates the receiver.
type Attempt struct {
	selections []int
}

// NewAttempt creates an attempt for q with every slot unanswered.
func NewAttempt(q Quiz) Attempt {
	sel := make([]int, len(q.Questions))
	for i := range sel {
		sel[i] = Unanswered
	}
	return Attempt{selections: sel}
}

// AttemptOf builds an attempt from explicit selections. Use Unanswered for
// empty slots.
func AttemptOf(selections ...int) Attempt {
	return Attempt{selections: slices.Clone(selections)}
}

// Len returns the number of slots.
func (a Attempt) Len() int {
	return len(a.selections)
}

// Selection returns the option chosen for question i, or Unanswered.
func (a Attempt) Selection(i int) int {
	if i < 0 || i >= len(a.selections) {
		return Unanswered
	}
	return a.selections[i]
}

// Selections returns a copy of all slots.
func (a Attempt) Selections() []int {
	return slices.Clone(a.selections)
}

// Answered returns the number of slots that hold a selection.
func (a Attempt) Answered() int {
	n := 0
	for _, s := range a.selections {
		if s != Unanswered {
			n++
		}
	}
	return n
}

// Select returns a copy of the attempt with slot i set to option.
// The option is checked against q so the attempt stays well-formed.
func (a Attempt) Select(q Quiz, i, option int) (Attempt, error) {
	if len(a.selections) != len(q.Questions) {
		return a, fmt.Errorf("%w: attempt has %d slots, quiz has %d questions", ErrInvalidAttempt, len(a.selections), len(q.Questions))
	}
	if i < 0 || i >= len(a.selections) {
		return a, fmt.Errorf("%w: question %d out of range", ErrInvalidAttempt, i)
	}
	if option < 0 || option >= len(q.Questions[i].Options) {
		return a, fmt.Errorf("%w: option %d out of range for question %d", ErrInvalidAttempt, option, i)
	}
	next := slices.Clone(a.selections)
	next[i] = option
	return Attempt{selections: next}, nil
}

// Equal reports whether both attempts hold the same selections.
func (a Attempt) Equal(b Attempt) bool {
	return slices.Equal(a.selections, b.selections)
}
