package models

import "time"

// Assignment is a task published by a faculty member
type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Subject     string           `json:"subject"`
	DueDate     Date             `json:"dueDate"`
	FacultyID   string           `json:"facultyId"`
	Faculty     *IdentitySummary `json:"faculty,omitempty"`
	Submissions []Submission     `json:"submissions"`
}

// Submission is a student's hand-in. At most one per student per assignment.
type Submission struct {
	StudentID   string          `json:"studentId"`
	FileURL     string          `json:"fileUrl"`
	SubmittedAt time.Time       `json:"submittedAt"`
	Student     *StudentSummary `json:"student,omitempty"`
}

// HasSubmissionFrom reports whether studentID already submitted
func (a *Assignment) HasSubmissionFrom(studentID string) bool {
	for _, sub := range a.Submissions {
		if sub.StudentID == studentID {
			return true
		}
	}
	return false
}
