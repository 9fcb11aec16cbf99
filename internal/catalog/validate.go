package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abuammar/academy/internal/quiz"
)

// SupportedMajor is the catalog format major version this build reads.
const SupportedMajor = "v1"

// ValidationError lists every problem found in a catalog document.
// It matches quiz.ErrInvalidQuiz under errors.Is when any course carries an
// unpublishable quiz.
type ValidationError struct {
	Problems    []string
	invalidQuiz bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

func (e *ValidationError) Unwrap() error {
	if e.invalidQuiz {
		return quiz.ErrInvalidQuiz
	}
	return nil
}

// validateDocument performs the semantic checks a JSON Schema cannot express.
func validateDocument(doc Document) error {
	verr := &ValidationError{}

	switch {
	case !semver.IsValid(doc.Version):
		verr.Problems = append(verr.Problems, fmt.Sprintf("version %q is not a semantic version (want e.g. v1.0.0)", doc.Version))
	case semver.Major(doc.Version) != SupportedMajor:
		verr.Problems = append(verr.Problems, fmt.Sprintf("version %s is not supported (want %s.x.y)", doc.Version, SupportedMajor))
	}

	if len(doc.Courses) == 0 {
		verr.Problems = append(verr.Problems, "catalog has no courses")
	}

	ids := make(map[string]bool, len(doc.Courses))
	for _, c := range doc.Courses {
		if strings.TrimSpace(c.ID) == "" {
			verr.Problems = append(verr.Problems, fmt.Sprintf("course %q has an empty id", c.Title))
		} else if ids[c.ID] {
			verr.Problems = append(verr.Problems, fmt.Sprintf("duplicate course id: %q", c.ID))
		}
		ids[c.ID] = true

		if strings.TrimSpace(c.Title) == "" {
			verr.Problems = append(verr.Problems, fmt.Sprintf("course %q has an empty title", c.ID))
		}

		if err := quiz.Validate(c.Quiz); err != nil {
			verr.invalidQuiz = true
			msg := strings.TrimPrefix(err.Error(), quiz.ErrInvalidQuiz.Error()+": ")
			verr.Problems = append(verr.Problems, fmt.Sprintf("course %q quiz: %s", c.ID, msg))
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
