package entry

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Store is the persistence surface the service depends on. Lookup methods
// return (nil, nil) for "no such row"; a non-nil error always means the
// store itself failed.
type Store interface {
	StudentByID(ctx context.Context, studentID string) (*Student, error)
	InsertEntry(ctx context.Context, studentID string, entryTime time.Time, scannedBy int) (int64, error)
	EntriesByDate(ctx context.Context, date string) ([]Record, error)
	ListStudents(ctx context.Context) ([]Student, error)
}

// Repository persists entries and students in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo on the shared pool.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// StudentByID fetches one student by external id.
func (r *Repository) StudentByID(ctx context.Context, studentID string) (*Student, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT student_id, name, class, grade
		FROM students
		WHERE student_id = $1
	`, studentID)
	var s Student
	if err := row.Scan(&s.StudentID, &s.Name, &s.Class, &s.Grade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// InsertEntry writes one entry row. entry_date is derived from entryTime in
// server-local time so the dashboard's date partitioning lines up with the
// clock the scan happened on.
func (r *Repository) InsertEntry(ctx context.Context, studentID string, entryTime time.Time, scannedBy int) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO entries (student_id, entry_time, entry_date, scanned_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, studentID, entryTime, entryTime.Format(DateLayout), scannedBy).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EntriesByDate returns all entries for one calendar date joined with
// student details and the recording user's name, most recent first.
func (r *Repository) EntriesByDate(ctx context.Context, date string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.student_id, s.name, s.class, s.grade,
		       e.entry_time, e.entry_date, e.scanned_by, u.name
		FROM entries e
		JOIN students s ON e.student_id = s.student_id
		LEFT JOIN users u ON e.scanned_by = u.id
		WHERE e.entry_date = $1
		ORDER BY e.entry_time DESC
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var entryDate time.Time
		var scannedBy sql.NullInt64
		var scannedByName sql.NullString
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.StudentName, &rec.Class, &rec.Grade,
			&rec.EntryTime, &entryDate, &scannedBy, &scannedByName); err != nil {
			return nil, err
		}
		rec.EntryDate = entryDate.Format(DateLayout)
		if scannedBy.Valid {
			rec.ScannedBy = &scannedBy.Int64
		}
		if scannedByName.Valid {
			rec.ScannedByName = &scannedByName.String
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ListStudents returns the full roster ordered by name.
func (r *Repository) ListStudents(ctx context.Context) ([]Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT student_id, name, class, grade
		FROM students
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.StudentID, &s.Name, &s.Class, &s.Grade); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
