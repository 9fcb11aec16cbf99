package store

import (
	"context"
	"time"
)

// CourseOpenedData records a learner opening a course.
type CourseOpenedData struct {
	SessionID string
	CourseID  string
}

// QuizSubmittedData records a scored attempt.
type QuizSubmittedData struct {
	SessionID   string
	CourseID    string
	CourseTitle string
	Answered    int
	Questions   int
	Percentage  int
	Passed      bool
}

// CertificateIssuedData records a saved certificate.
type CertificateIssuedData struct {
	SessionID string
	CourseID  string
	Serial    string
	Path      string
}

// AttemptRecord is a submitted attempt read back from the journal.
type AttemptRecord struct {
	Sequence    int64
	SessionID   string
	CourseID    string
	CourseTitle string
	Percentage  int
	Passed      bool
	Timestamp   time.Time
}

// EventRepo provides append access to the activity journal.
type EventRepo interface {
	// AppendCourseOpened records a course_opened event.
	AppendCourseOpened(ctx context.Context, data CourseOpenedData) error

	// AppendQuizSubmitted records a quiz_submitted event.
	AppendQuizSubmitted(ctx context.Context, data QuizSubmittedData) error

	// AppendCertificateIssued records a certificate_issued event.
	AppendCertificateIssued(ctx context.Context, data CertificateIssuedData) error

	// RecentAttempts returns up to limit attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error)

	// CertificateCount returns how many certificates have been issued.
	CertificateCount(ctx context.Context) (int, error)
}
