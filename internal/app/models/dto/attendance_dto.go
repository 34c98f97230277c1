package dto

import "github.com/yigit/collegeerp/internal/app/models"

// MarkAttendanceRequest identifies the student by roll number
type MarkAttendanceRequest struct {
	Student string                  `json:"student" validate:"required"`
	Subject string                  `json:"subject" validate:"required"`
	Date    models.Date             `json:"date" validate:"required"`
	Status  models.AttendanceStatus `json:"status" validate:"required,oneof=present absent"`
	Marks   *float64                `json:"marks,omitempty" validate:"omitempty,gte=0"`
}
