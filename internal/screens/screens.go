// Package screens builds the screen for a session state.
package screens

import (
	cert "github.com/abuammar/academy/internal/certificate"
	"github.com/abuammar/academy/internal/screen"
	"github.com/abuammar/academy/internal/screens/course"
	"github.com/abuammar/academy/internal/screens/exam"
	"github.com/abuammar/academy/internal/screens/home"
	"github.com/abuammar/academy/internal/screens/result"
	"github.com/abuammar/academy/internal/session"
)

// Deps are the collaborators screens need.
type Deps struct {
	Machine *session.Machine
	Issuer  cert.Issuer
	History home.History // optional
}

// For returns the screen rendering the machine's current state.
func For(d Deps) screen.Screen {
	switch st := d.Machine.State().(type) {
	case session.CourseDetail:
		return course.New(d.Machine, st)
	case session.Quiz:
		return exam.New(d.Machine, st)
	case session.Certificate:
		return result.New(d.Machine, d.Issuer, st)
	default:
		return home.New(d.Machine, d.History)
	}
}
