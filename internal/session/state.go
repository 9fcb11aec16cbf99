package session

import (
	"github.com/abuammar/academy/internal/catalog"
	"github.com/abuammar/academy/internal/quiz"
)

// Screen names the view a state is rendered as.
type Screen int

const (
	ScreenHome         Screen = iota // Course catalog
	ScreenCourseDetail               // Lessons of the active course
	ScreenQuiz                       // Quiz form for the active course
	ScreenCertificate                // Result and certificate download
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenCourseDetail:
		return "course"
	case ScreenQuiz:
		return "quiz"
	case ScreenCertificate:
		return "certificate"
	default:
		return "unknown"
	}
}

// State is the navigation position of a session. It is one of Home,
// CourseDetail, Quiz or Certificate; each variant carries exactly the data
// its screen needs, so a quiz without a course cannot be expressed.
type State interface {
	Screen() Screen
	isState()
}

// Home is the catalog list. It carries no course and no score.
type Home struct{}

// CourseDetail shows the lessons of Course.
type CourseDetail struct {
	Course catalog.Course
}

// Quiz is an attempt in progress for Course.
type Quiz struct {
	Course  catalog.Course
	Attempt quiz.Attempt
}

// Certificate holds the score of the submitted attempt. LearnerName is
// only ever non-empty when Score.Passed.
type Certificate struct {
	Course      catalog.Course
	Score       quiz.Score
	LearnerName string
}

func (Home) Screen() Screen         { return ScreenHome }
func (CourseDetail) Screen() Screen { return ScreenCourseDetail }
func (Quiz) Screen() Screen         { return ScreenQuiz }
func (Certificate) Screen() Screen  { return ScreenCertificate }

func (Home) isState()         {}
func (CourseDetail) isState() {}
func (Quiz) isState()         {}
func (Certificate) isState()  {}

// ActiveCourse returns the course carried by s, if any.
func ActiveCourse(s State) (catalog.Course, bool) {
	switch st := s.(type) {
	case Home:
		return catalog.Course{}, false
	case CourseDetail:
		return st.Course, true
	case Quiz:
		return st.Course, true
	case Certificate:
		return st.Course, true
	default:
		return catalog.Course{}, false
	}
}
