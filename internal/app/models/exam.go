package models

// ExamType is the kind of sitting
type ExamType string

const (
	ExamMidterm ExamType = "midterm"
	ExamFinal   ExamType = "final"
	ExamBacklog ExamType = "backlog"
)

// Exam is a scheduled exam sitting
type Exam struct {
	ID      string   `json:"id"`
	Course  string   `json:"course"`
	Subject string   `json:"subject"`
	Date    Date     `json:"date"`
	Type    ExamType `json:"type"`
}

// Result is the marks a student obtained in an exam. Exam is joined on read and
// stays nil when the referenced exam no longer exists.
type Result struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student"`
	ExamID    string  `json:"examId"`
	Marks     float64 `json:"marks"`
	Grade     string  `json:"grade,omitempty"`
	Exam      *Exam   `json:"exam,omitempty"`
}
