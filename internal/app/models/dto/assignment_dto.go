package dto

import "github.com/yigit/collegeerp/internal/app/models"

// CreateAssignmentRequest publishes an assignment
type CreateAssignmentRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description,omitempty"`
	Subject     string      `json:"subject" validate:"required"`
	DueDate     models.Date `json:"dueDate" validate:"required"`
}

// SubmitAssignmentRequest hands in a file for a student
type SubmitAssignmentRequest struct {
	StudentID string `json:"studentId" validate:"required,uuid"`
	FileURL   string `json:"fileUrl" validate:"required"`
}
