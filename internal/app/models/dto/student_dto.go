package dto

import (
	"encoding/json"

	"github.com/yigit/collegeerp/internal/app/models"
)

// StudentListResponse is one page of the student directory
type StudentListResponse struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentStatsResponse is the directory overview
type StudentStatsResponse struct {
	TotalStudents     int64                  `json:"totalStudents"`
	ActiveStudents    int64                  `json:"activeStudents"`
	GraduatedStudents int64                  `json:"graduatedStudents"`
	InactiveStudents  int64                  `json:"inactiveStudents"`
	SuspendedStudents int64                  `json:"suspendedStudents"`
	DepartmentStats   []models.GroupCount    `json:"departmentStats"`
	SemesterStats     []models.SemesterCount `json:"semesterStats"`
}

// BulkImportRequest carries raw items so a malformed item only fails itself
type BulkImportRequest struct {
	Students []json.RawMessage `json:"students"`
}

// BulkImportResult is the outcome of one imported item
type BulkImportResult struct {
	Index   int             `json:"index"`
	Success bool            `json:"success"`
	Student *models.Student `json:"student,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// BulkImportResponse lists per-item outcomes in input order
type BulkImportResponse struct {
	Results []BulkImportResult `json:"results"`
}

// UpdateStatusRequest changes only the status of a student
type UpdateStatusRequest struct {
	Status models.StudentStatus `json:"status"`
}
