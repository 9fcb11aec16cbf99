package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abuammar/academy/internal/catalog"
	"github.com/abuammar/academy/internal/certificate"
	"github.com/abuammar/academy/internal/quiz"
)

// ErrInvalidState is returned when a trigger is fired from a state whose
// guard does not allow it. The UI never offers such a trigger, so seeing
// this error is a programming mistake.
var ErrInvalidState = errors.New("invalid session state")

// Machine owns the navigation state of one learner session.
// It is not safe for concurrent use; the UI update loop is its only caller.
type Machine struct {
	id      string
	catalog *catalog.Catalog
	state   State
}

// New creates a session positioned on the home screen.
func New(cat *catalog.Catalog) *Machine {
	return &Machine{
		id:      uuid.New().String(),
		catalog: cat,
		state:   Home{},
	}
}

// ID returns the session's unique identifier.
func (m *Machine) ID() string {
	return m.id
}

// Catalog returns the catalog the session browses.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.catalog
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Screen returns the current screen.
func (m *Machine) Screen() Screen {
	return m.state.Screen()
}

func (m *Machine) invalid(trigger string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidState, trigger, m.state.Screen())
}

// SelectCourse moves from Home to the detail view of course id.
func (m *Machine) SelectCourse(id string) error {
	if _, ok := m.state.(Home); !ok {
		return m.invalid("select course")
	}
	course, err := m.catalog.Get(id)
	if err != nil {
		return err
	}
	m.state = CourseDetail{Course: course}
	return nil
}

// RequestQuiz opens the quiz of the active course with a fresh attempt.
func (m *Machine) RequestQuiz() error {
	st, ok := m.state.(CourseDetail)
	if !ok {
		return m.invalid("request quiz")
	}
	m.state = Quiz{Course: st.Course, Attempt: quiz.NewAttempt(st.Course.Quiz)}
	return nil
}

// Choose records option as the answer to question i of the open quiz.
func (m *Machine) Choose(i, option int) error {
	st, ok := m.state.(Quiz)
	if !ok {
		return m.invalid("choose option")
	}
	next, err := st.Attempt.Select(st.Course.Quiz, i, option)
	if err != nil {
		return err
	}
	st.Attempt = next
	m.state = st
	return nil
}

// Submit scores the open attempt and moves to the certificate view.
// On error the session stays on the quiz.
func (m *Machine) Submit() (quiz.Score, error) {
	st, ok := m.state.(Quiz)
	if !ok {
		return quiz.Score{}, m.invalid("submit")
	}
	score, err := quiz.ScoreAttempt(st.Course.Quiz, st.Attempt)
	if err != nil {
		return quiz.Score{}, fmt.Errorf("score %s: %w", st.Course.ID, err)
	}
	m.state = Certificate{Course: st.Course, Score: score}
	return score, nil
}

// SetLearnerName edits the name printed on the certificate. Only a passing
// result has a name field.
func (m *Machine) SetLearnerName(name string) error {
	st, ok := m.state.(Certificate)
	if !ok || !st.Score.Passed {
		return m.invalid("set learner name")
	}
	st.LearnerName = name
	m.state = st
	return nil
}

// RetakeQuiz starts a new attempt after a failing result.
func (m *Machine) RetakeQuiz() error {
	st, ok := m.state.(Certificate)
	if !ok || st.Score.Passed {
		return m.invalid("retake quiz")
	}
	m.state = Quiz{Course: st.Course, Attempt: quiz.NewAttempt(st.Course.Quiz)}
	return nil
}

// GoHome returns to the catalog, dropping the active course, score and
// learner name. It is allowed from every state.
func (m *Machine) GoHome() {
	m.state = Home{}
}

// CertificateRequest returns the issuer input for a passing result.
func (m *Machine) CertificateRequest() (certificate.Request, error) {
	st, ok := m.state.(Certificate)
	if !ok || !st.Score.Passed {
		return certificate.Request{}, m.invalid("request certificate")
	}
	return certificate.Request{
		LearnerName: st.LearnerName,
		CourseTitle: st.Course.Title,
		Percentage:  st.Score.Percentage,
	}, nil
}
