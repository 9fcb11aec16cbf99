package quiz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidQuiz reports a content-authoring problem, such as an empty
	// question set. A course carrying one must not be published.
	ErrInvalidQuiz = errors.New("invalid quiz")

	// ErrInvalidAttempt reports an attempt that does not fit its quiz.
	// The UI never produces one; seeing it is a programming error.
	ErrInvalidAttempt = errors.New("invalid attempt")
)

// MinOptions is the smallest number of choices a question may offer.
const MinOptions = 2

// Question is a single-choice question.
type Question struct {
	Prompt      string   `yaml:"prompt" json:"prompt"`
	Options     []string `yaml:"options" json:"options"`
	AnswerIndex int      `yaml:"answer" json:"answer"`
}

// Quiz is the ordered question set attached to a course.
type Quiz struct {
	Questions []Question `yaml:"questions" json:"questions"`
	// PassMark is the minimum percentage (0-100) needed to pass.
	PassMark int `yaml:"pass_mark" json:"pass_mark"`
}

// Len returns the number of questions.
func (q Quiz) Len() int {
	return len(q.Questions)
}

// Clone returns a deep copy; the result shares no slices with q.
func (q Quiz) Clone() Quiz {
	out := q
	out.Questions = slices.Clone(q.Questions)
	for i := range out.Questions {
		out.Questions[i].Options = slices.Clone(q.Questions[i].Options)
	}
	return out
}

// Validate checks the authoring invariants of a quiz and returns every
// problem found, wrapped in ErrInvalidQuiz.
func Validate(q Quiz) error {
	var errs []string

	if len(q.Questions) == 0 {
		errs = append(errs, "quiz has no questions")
	}
	if q.PassMark < 0 || q.PassMark > 100 {
		errs = append(errs, fmt.Sprintf("pass mark must be in [0, 100], got %d", q.PassMark))
	}
	for i, question := range q.Questions {
		prefix := fmt.Sprintf("question %d", i+1)
		if strings.TrimSpace(question.Prompt) == "" {
			errs = append(errs, prefix+": prompt is empty")
		}
		if len(question.Options) < MinOptions {
			errs = append(errs, fmt.Sprintf("%s: needs at least %d options, got %d", prefix, MinOptions, len(question.Options)))
		}
		if question.AnswerIndex < 0 || question.AnswerIndex >= len(question.Options) {
			errs = append(errs, fmt.Sprintf("%s: answer index %d out of range [0, %d)", prefix, question.AnswerIndex, len(question.Options)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidQuiz, strings.Join(errs, "; "))
	}
	return nil
}
