package catalog

import (
	"slices"

	"github.com/abuammar/academy/internal/quiz"
)

// Lesson is one unit of course content. Lessons are shown in catalog order.
type Lesson struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

// Course is a read-only catalog record.
type Course struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Lessons     []Lesson  `yaml:"lessons" json:"lessons"`
	Quiz        quiz.Quiz `yaml:"quiz" json:"quiz"`
}

// Clone returns a deep copy of c, so callers can never reach catalog data.
func (c Course) Clone() Course {
	out := c
	out.Lessons = slices.Clone(c.Lessons)
	out.Quiz = c.Quiz.Clone()
	return out
}

// Document is the on-disk shape of a catalog file.
type Document struct {
	Version string   `yaml:"version" json:"version"`
	Academy string   `yaml:"academy" json:"academy"`
	Courses []Course `yaml:"courses" json:"courses"`
}
