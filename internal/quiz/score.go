package quiz

import "fmt"

// Score is the outcome of one submitted attempt.
type Score struct {
	Percentage int
	Passed     bool
}

// ScoreAttempt grades an attempt against its quiz.
//
// The percentage is 100*correct/n rounded half up, computed in integers so
// that boundary results (2/3 -> 67, 1/8 -> 13) never depend on float
// representation. An unanswered slot never counts as correct.
func ScoreAttempt(q Quiz, a Attempt) (Score, error) {
	n := len(q.Questions)
	if n == 0 {
		return Score{}, fmt.Errorf("%w: quiz has no questions", ErrInvalidQuiz)
	}
	if a.Len() != n {
		return Score{}, fmt.Errorf("%w: %d selections for %d questions", ErrInvalidAttempt, a.Len(), n)
	}

	correct := 0
	for i, question := range q.Questions {
		if a.selections[i] != Unanswered && a.selections[i] == question.AnswerIndex {
			correct++
		}
	}

	pct := RoundPercent(correct, n)
	return Score{
		Percentage: pct,
		Passed:     pct >= q.PassMark,
	}, nil
}

// RoundPercent returns 100*part/whole rounded half up. whole must be > 0.
func RoundPercent(part, whole int) int {
	return (200*part + whole) / (2 * whole)
}
