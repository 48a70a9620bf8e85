package entry

import "time"

// DateLayout is the calendar-date format used as the entry partition key.
const DateLayout = "2006-01-02"

// Student is a registered student. The external-facing key is StudentID;
// the admin process that maintains these rows is outside this service.
type Student struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Grade     string `json:"grade"`
}

// Record is one entry row joined with student details and the name of the
// staff member who recorded it, as served to the dashboard.
type Record struct {
	ID            int64     `json:"id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	Class         string    `json:"class"`
	Grade         string    `json:"grade"`
	EntryTime     time.Time `json:"entry_time"`
	EntryDate     string    `json:"entry_date"`
	ScannedBy     *int64    `json:"scanned_by"`
	ScannedByName *string   `json:"scanned_by_name"`
}

// Confirmation is returned after recording an entry. Demo reports an
// acknowledgment served from the canned dataset with no row written; the
// dashboard uses it to show a degraded-mode indicator.
type Confirmation struct {
	Student   Student
	EntryTime time.Time
	ScannedBy string
	Demo      bool
}
