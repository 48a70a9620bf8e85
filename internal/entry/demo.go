package entry

import "time"

// Canned dataset served when the durable store is unreachable. Fixed at
// build time, read-only, and models "today" only.

var demoStudents = []Student{
	{StudentID: "STU001", Name: "Alice Johnson", Class: "10A", Grade: "10th"},
	{StudentID: "STU002", Name: "Bob Smith", Class: "10A", Grade: "10th"},
	{StudentID: "STU003", Name: "Charlie Brown", Class: "10B", Grade: "10th"},
	{StudentID: "STU004", Name: "Diana Prince", Class: "11A", Grade: "11th"},
	{StudentID: "STU005", Name: "Edward Wilson", Class: "11A", Grade: "11th"},
	{StudentID: "STU006", Name: "Fiona Green", Class: "11B", Grade: "11th"},
	{StudentID: "STU007", Name: "George Miller", Class: "12A", Grade: "12th"},
	{StudentID: "STU008", Name: "Hannah Lee", Class: "12A", Grade: "12th"},
}

// DemoStudent looks up the canned dataset by student id. Lookup is exact
// and case-sensitive, like the store's.
func DemoStudent(studentID string) *Student {
	for i := range demoStudents {
		if demoStudents[i].StudentID == studentID {
			return &demoStudents[i]
		}
	}
	return nil
}

// DemoStudents returns the full canned roster.
func DemoStudents() []Student {
	out := make([]Student, len(demoStudents))
	copy(out, demoStudents)
	return out
}

// DemoEntries returns the canned dashboard rows. The dataset models today
// only: any other requested date yields an empty set. Rows come back most
// recent first, matching the store query's ordering.
func DemoEntries(date string, now time.Time) []Record {
	if date != now.Format(DateLayout) {
		return []Record{}
	}
	today := now.Format(DateLayout)
	smith := "Mr. John Smith"
	davis := "Ms. Emily Davis"
	return []Record{
		{
			ID:            3,
			StudentID:     "STU005",
			StudentName:   "Edward Wilson",
			Class:         "11A",
			Grade:         "11th",
			EntryTime:     now.Add(-1 * time.Hour),
			EntryDate:     today,
			ScannedByName: &smith,
		},
		{
			ID:            2,
			StudentID:     "STU003",
			StudentName:   "Charlie Brown",
			Class:         "10B",
			Grade:         "10th",
			EntryTime:     now.Add(-90 * time.Minute),
			EntryDate:     today,
			ScannedByName: &davis,
		},
		{
			ID:            1,
			StudentID:     "STU001",
			StudentName:   "Alice Johnson",
			Class:         "10A",
			Grade:         "10th",
			EntryTime:     now.Add(-2 * time.Hour),
			EntryDate:     today,
			ScannedByName: &smith,
		},
	}
}
