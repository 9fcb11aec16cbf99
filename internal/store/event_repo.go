package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *eventRepo) AppendCourseOpened(ctx context.Context, data CourseOpenedData) error {
	insert := builder.Insert("course_events").
		Set("session_id", data.SessionID).
		Set("course_id", data.CourseID).
		Set("created_at", r.now().UnixMilli())

	if _, err := appendEvent(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save course event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizSubmitted(ctx context.Context, data QuizSubmittedData) error {
	insert := builder.Insert("attempt_events").
		Set("session_id", data.SessionID).
		Set("course_id", data.CourseID).
		Set("course_title", data.CourseTitle).
		Set("answered", data.Answered).
		Set("questions", data.Questions).
		Set("percentage", data.Percentage).
		Set("passed", boolToInt(data.Passed)).
		Set("created_at", r.now().UnixMilli())

	if _, err := appendEvent(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendCertificateIssued(ctx context.Context, data CertificateIssuedData) error {
	insert := builder.Insert("certificate_events").
		Set("session_id", data.SessionID).
		Set("course_id", data.CourseID).
		Set("serial", data.Serial).
		Set("path", data.Path).
		Set("created_at", r.now().UnixMilli())

	if _, err := appendEvent(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save certificate event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	t := builder.Table("attempt_events")
	query, args := builder.Select(
		t.C("sequence"), t.C("session_id"), t.C("course_id"), t.C("course_title"),
		t.C("percentage"), t.C("passed"), t.C("created_at"),
	).
		From(t).
		OrderBy(entsql.Desc(t.C("sequence"))).
		Limit(limit).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var (
			rec       AttemptRecord
			passed    int
			createdAt int64
		)
		if err := rows.Scan(&rec.Sequence, &rec.SessionID, &rec.CourseID, &rec.CourseTitle,
			&rec.Percentage, &passed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		rec.Passed = passed != 0
		rec.Timestamp = time.UnixMilli(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *eventRepo) CertificateCount(ctx context.Context) (int, error) {
	query, args := builder.Select(entsql.Count("*")).
		From(builder.Table("certificate_events")).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count certificates: %w", err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count certificates: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
