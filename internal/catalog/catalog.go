package catalog

import (
	"errors"
	"fmt"
)

// ErrCourseNotFound is returned when a course ID is not in the catalog.
var ErrCourseNotFound = errors.New("course not found")

// DefaultAcademy is used when a catalog file does not name its academy.
const DefaultAcademy = "AbuAmmar Tech Academy"

// Catalog is the immutable, validated set of courses.
type Catalog struct {
	version string
	academy string
	courses []Course
	byID    map[string]int
}

// New validates doc and builds a Catalog from it.
func New(doc Document) (*Catalog, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	academy := doc.Academy
	if academy == "" {
		academy = DefaultAcademy
	}

	c := &Catalog{
		version: doc.Version,
		academy: academy,
		courses: cloneCourses(doc.Courses),
		byID:    make(map[string]int, len(doc.Courses)),
	}
	for i, course := range c.courses {
		c.byID[course.ID] = i
	}
	return c, nil
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string {
	return c.version
}

// Academy returns the name printed on headers and certificates.
func (c *Catalog) Academy() string {
	return c.academy
}

// Courses returns all courses in display order.
func (c *Catalog) Courses() []Course {
	return cloneCourses(c.courses)
}

func cloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, course := range courses {
		out[i] = course.Clone()
	}
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Get returns the course with the given ID.
func (c *Catalog) Get(id string) (Course, error) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("%w: %q", ErrCourseNotFound, id)
	}
	return c.courses[i].Clone(), nil
}
