package dto

import "github.com/yigit/collegeerp/internal/app/models"

// CreateExamRequest schedules an exam
type CreateExamRequest struct {
	Course  string          `json:"course" validate:"required"`
	Subject string          `json:"subject" validate:"required"`
	Date    models.Date     `json:"date" validate:"required"`
	Type    models.ExamType `json:"type" validate:"required,oneof=midterm final backlog"`
}

// RecordResultRequest enters marks for a student in an exam
type RecordResultRequest struct {
	Student string   `json:"student" validate:"required,uuid"`
	Exam    string   `json:"exam" validate:"required,uuid"`
	Marks   *float64 `json:"marks" validate:"required,gte=0"`
	Grade   string   `json:"grade,omitempty"`
}
