package models

// AttendanceStatus marks presence for one class session
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// Attendance records one student's presence in one subject on one date
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student"`
	Subject   string           `json:"subject"`
	Date      Date             `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Marks     *float64         `json:"marks,omitempty"`
}
