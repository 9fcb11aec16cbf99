package certificate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrRendering wraps every failure to produce a certificate. Callers
	// show it as a retryable message; it never affects session state.
	ErrRendering = errors.New("certificate rendering failed")

	// ErrBlankName is the cause when the learner name is empty.
	ErrBlankName = errors.New("learner name is required")
)

// Request is the input contract of an issuer.
type Request struct {
	LearnerName string
	CourseTitle string
	Percentage  int
}

// Artifact describes a saved certificate.
type Artifact struct {
	Serial string
	Path   string
}

// Issuer renders and saves certificates.
type Issuer interface {
	Issue(ctx context.Context, req Request) (Artifact, error)
}

// normalize trims the request and checks it can be rendered.
func normalize(req Request) (Request, error) {
	req.LearnerName = strings.Join(strings.Fields(req.LearnerName), " ")
	req.CourseTitle = strings.TrimSpace(req.CourseTitle)
	if req.LearnerName == "" {
		return req, fmt.Errorf("%w: %w", ErrRendering, ErrBlankName)
	}
	if req.CourseTitle == "" {
		return req, fmt.Errorf("%w: course title is required", ErrRendering)
	}
	if req.Percentage < 0 || req.Percentage > 100 {
		return req, fmt.Errorf("%w: percentage %d out of range", ErrRendering, req.Percentage)
	}
	return req, nil
}

// slug lowercases s and keeps letters and digits, joining runs of anything
// else with a single dash.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}

// FileName returns the file name used for a request's certificate.
func FileName(req Request) string {
	return fmt.Sprintf("certificate-%s-%s.pdf", slug(req.CourseTitle), slug(req.LearnerName))
}
