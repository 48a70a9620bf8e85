package store

import (
	"context"
	"fmt"
)

// Statements run one at a time: the pgx extended protocol rejects
// multi-statement batches.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         SERIAL PRIMARY KEY,
		email      TEXT UNIQUE NOT NULL,
		password   TEXT NOT NULL,
		role       TEXT NOT NULL CHECK (role IN ('teacher', 'principal')),
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id         SERIAL PRIMARY KEY,
		student_id TEXT UNIQUE NOT NULL,
		name       TEXT NOT NULL,
		class      TEXT NOT NULL,
		grade      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS entries (
		id         SERIAL PRIMARY KEY,
		student_id TEXT NOT NULL REFERENCES students(student_id),
		entry_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		entry_date DATE NOT NULL,
		scanned_by INT REFERENCES users(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_student ON entries(student_id)`,
}

// Migrate creates the users, students and entries tables when missing.
func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.Client.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Seed inserts the sample accounts and students used for demos and local
// development. Inserts are idempotent; existing rows are left alone.
// Passwords are stored as-is to match the two comparison paths the login
// contract supports. Not for production use.
func (d *DB) Seed(ctx context.Context) error {
	users := []struct{ email, password, role, name string }{
		{"principal@school.edu", "principal123", "principal", "Dr. Sarah Johnson"},
		{"teacher1@school.edu", "teacher123", "teacher", "Mr. John Smith"},
		{"teacher2@school.edu", "teacher123", "teacher", "Ms. Emily Davis"},
	}
	for _, u := range users {
		_, err := d.Client.ExecContext(ctx, `
			INSERT INTO users (email, password, role, name)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING
		`, u.email, u.password, u.role, u.name)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	students := []struct{ studentID, name, class, grade string }{
		{"STU001", "Alice Johnson", "10A", "10th"},
		{"STU002", "Bob Smith", "10A", "10th"},
		{"STU003", "Charlie Brown", "10B", "10th"},
		{"STU004", "Diana Prince", "11A", "11th"},
		{"STU005", "Edward Wilson", "11A", "11th"},
		{"STU006", "Fiona Green", "11B", "11th"},
		{"STU007", "George Miller", "12A", "12th"},
		{"STU008", "Hannah Lee", "12A", "12th"},
	}
	for _, s := range students {
		_, err := d.Client.ExecContext(ctx, `
			INSERT INTO students (student_id, name, class, grade)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (student_id) DO NOTHING
		`, s.studentID, s.name, s.class, s.grade)
		if err != nil {
			return fmt.Errorf("seed students: %w", err)
		}
	}
	return nil
}
