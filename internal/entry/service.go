package entry

import (
	"context"
	"errors"
	"log"
	"time"

	"entrytrack/internal/auth"
	"entrytrack/internal/metrics"
	"entrytrack/internal/queue"
)

var (
	// ErrMissingStudentID rejects empty identifiers before any lookup.
	ErrMissingStudentID = errors.New("student id required")
	// ErrStudentNotFound means the identifier resolved nowhere, store or
	// canned dataset.
	ErrStudentNotFound = errors.New("student not found")
)

// Service records and queries entries, degrading to the canned dataset when
// the store fails. Storage outages become successful-looking responses with
// an explicit demo flag; auth and validation errors are never masked.
type Service struct {
	store Store
	queue queue.Queue
	now   func() time.Time
}

// NewService creates a service. queue may be nil when event publishing is
// not wired (tests, degraded deployments).
func NewService(store Store, q queue.Queue) *Service {
	return &Service{store: store, queue: q, now: time.Now}
}

// degrade runs a store operation and substitutes canned data when the store
// reports an operational failure. This is the single fallback path for every
// query-shaped operation; "not found" results are not storage errors and are
// handled by the callers.
func degrade[T any](operation string, op func() (T, error), canned func() T) (T, bool) {
	v, err := op()
	if err != nil {
		log.Printf("store failure on %s, serving demo data: %v", operation, err)
		metrics.DemoFallbacks.WithLabelValues(operation).Inc()
		return canned(), true
	}
	return v, false
}

// Record validates the student, persists one entry row and returns a
// confirmation. Store misses and store failures both fall back to the canned
// dataset; a fallback acknowledgment writes nothing and is flagged Demo.
func (s *Service) Record(ctx context.Context, p auth.Principal, studentID string) (Confirmation, error) {
	if studentID == "" {
		return Confirmation{}, ErrMissingStudentID
	}
	now := s.now()

	student, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		log.Printf("store failure on student lookup, trying demo data: %v", err)
		return s.demoConfirmation(p, studentID, now)
	}
	if student == nil {
		return s.demoConfirmation(p, studentID, now)
	}

	id, insertErr := s.store.InsertEntry(ctx, student.StudentID, now, p.ID)
	if insertErr != nil {
		log.Printf("store failure on entry insert, trying demo data: %v", insertErr)
		return s.demoConfirmation(p, studentID, now)
	}
	metrics.EntriesRecorded.Inc()
	s.publish(ctx, id, *student, now)

	return Confirmation{
		Student:   *student,
		EntryTime: now,
		ScannedBy: p.Name,
	}, nil
}

func (s *Service) demoConfirmation(p auth.Principal, studentID string, now time.Time) (Confirmation, error) {
	student := DemoStudent(studentID)
	if student == nil {
		return Confirmation{}, ErrStudentNotFound
	}
	metrics.DemoFallbacks.WithLabelValues("record").Inc()
	return Confirmation{
		Student:   *student,
		EntryTime: now,
		ScannedBy: p.Name,
		Demo:      true,
	}, nil
}

func (s *Service) publish(ctx context.Context, entryID int64, student Student, now time.Time) {
	if s.queue == nil {
		return
	}
	evt := queue.EntryEvent{
		EntryID:   entryID,
		StudentID: student.StudentID,
		EntryDate: now.Format(DateLayout),
	}
	if err := s.queue.Publish(ctx, evt); err != nil {
		log.Printf("queue publish failed: %v", err)
	}
}

// ListByDate returns entries for one calendar date, most recent first. An
// empty date means today. In degraded mode the canned rows are served for
// today only; any other date comes back empty, still flagged demo.
func (s *Service) ListByDate(ctx context.Context, date string) ([]Record, string, bool) {
	if date == "" {
		date = s.now().Format(DateLayout)
	}
	recs, demo := degrade("list_entries",
		func() ([]Record, error) { return s.store.EntriesByDate(ctx, date) },
		func() []Record { return DemoEntries(date, s.now()) },
	)
	if recs == nil {
		recs = []Record{}
	}
	return recs, date, demo
}

// ListStudents returns the roster, falling back to the canned one.
func (s *Service) ListStudents(ctx context.Context) ([]Student, bool) {
	students, demo := degrade("list_students",
		func() ([]Student, error) { return s.store.ListStudents(ctx) },
		DemoStudents,
	)
	if students == nil {
		students = []Student{}
	}
	return students, demo
}
