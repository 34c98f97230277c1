package models

import "time"

// StudentStatus is the lifecycle status of a student record
type StudentStatus string

const (
	StatusActive    StudentStatus = "Active"
	StatusInactive  StudentStatus = "Inactive"
	StatusGraduated StudentStatus = "Graduated"
	StatusSuspended StudentStatus = "Suspended"
)

// StudentStatuses lists every allowed status in display order
var StudentStatuses = []StudentStatus{StatusActive, StatusInactive, StatusGraduated, StatusSuspended}

// IsValid reports whether s is one of StudentStatuses
func (s StudentStatus) IsValid() bool {
	for _, allowed := range StudentStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// Defaults applied to a new student record
const (
	DefaultCategory = "General"
	DefaultCaste    = "General"
	DefaultCountry  = "India"
)

// Address of a student
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

// EmergencyContact of a student
type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
}

// Parent holds parent and guardian contact details
type Parent struct {
	FatherName    string `json:"fatherName,omitempty"`
	FatherPhone   string `json:"fatherPhone,omitempty"`
	FatherEmail   string `json:"fatherEmail,omitempty" validate:"omitempty,email"`
	MotherName    string `json:"motherName,omitempty"`
	MotherPhone   string `json:"motherPhone,omitempty"`
	MotherEmail   string `json:"motherEmail,omitempty" validate:"omitempty,email"`
	GuardianName  string `json:"guardianName,omitempty"`
	GuardianPhone string `json:"guardianPhone,omitempty"`
	GuardianEmail string `json:"guardianEmail,omitempty" validate:"omitempty,email"`
}

// PreviousEducation describes the qualifying education of a student
type PreviousEducation struct {
	Institution      string   `json:"institution,omitempty"`
	YearOfCompletion int      `json:"yearOfCompletion,omitempty"`
	Percentage       *float64 `json:"percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Board            string   `json:"board,omitempty"`
}

// StudentDocument is an uploaded document reference
type StudentDocument struct {
	Name       string    `json:"name,omitempty"`
	Type       string    `json:"type,omitempty"`
	URL        string    `json:"url,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	Verified   bool      `json:"verified"`
}

// Student is a directory record. Nested structures are owned values, not entities.
type Student struct {
	ID string `json:"id"`

	Name        string `json:"name" validate:"required"`
	RollNumber  string `json:"rollNumber" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	DateOfBirth Date   `json:"dateOfBirth" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female Other"`
	BloodGroup  string `json:"bloodGroup,omitempty" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`

	Department       string `json:"department" validate:"required"`
	Branch           string `json:"branch,omitempty"`
	Course           string `json:"course" validate:"required"`
	Semester         int    `json:"semester" validate:"required,min=1"`
	AcademicYear     string `json:"academicYear" validate:"required"`
	AdmissionDate    Date   `json:"admissionDate"`
	EnrollmentNumber string `json:"enrollmentNumber,omitempty"`

	TwelfthPercentage *float64 `json:"twelfthPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	TenthPercentage   *float64 `json:"tenthPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`

	AadharNumber string `json:"aadharNumber,omitempty"`
	PanNumber    string `json:"panNumber,omitempty"`

	UserID          string `json:"userId,omitempty"`
	ProfileComplete bool   `json:"profileComplete"`

	Address           Address           `json:"address"`
	EmergencyContact  EmergencyContact  `json:"emergencyContact"`
	Parent            Parent            `json:"parent"`
	PreviousEducation PreviousEducation `json:"previousEducation"`

	Category string        `json:"category" validate:"required,oneof=General OBC SC ST EWS Other"`
	Caste    string        `json:"caste" validate:"required,oneof=General OBC SC ST EWS NT SBC"`
	Status   StudentStatus `json:"status" validate:"required,oneof=Active Inactive Graduated Suspended"`

	Documents    []StudentDocument `json:"documents"`
	Hobbies      []string          `json:"hobbies"`
	Achievements []string          `json:"achievements"`
	Notes        string            `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplyDefaults fills the fields that have a default value when left empty
func (s *Student) ApplyDefaults(now time.Time) {
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	if s.Caste == "" {
		s.Caste = DefaultCaste
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.Address.Country == "" {
		s.Address.Country = DefaultCountry
	}
	if s.AdmissionDate.IsZero() {
		s.AdmissionDate = NewDate(now)
	}
	for i := range s.Documents {
		if s.Documents[i].UploadedAt.IsZero() {
			s.Documents[i].UploadedAt = now
		}
	}
	if s.Documents == nil {
		s.Documents = []StudentDocument{}
	}
	if s.Hobbies == nil {
		s.Hobbies = []string{}
	}
	if s.Achievements == nil {
		s.Achievements = []string{}
	}
}

// StudentSummary is the part of a student joined into dependent records
type StudentSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber"`
}

// StudentFilter narrows a directory listing. Zero values mean "no constraint".
type StudentFilter struct {
	Search       string
	Department   string
	Semester     int
	Status       StudentStatus
	Category     string
	AcademicYear string

	// EnrollmentPrefix matches enrollment numbers starting with the value
	EnrollmentPrefix string
}

// GroupCount is one bucket of a grouped count keyed by a string field
type GroupCount struct {
	Key   string `json:"_id"`
	Count int64  `json:"count"`
}

// SemesterCount is one bucket of the per-semester count
type SemesterCount struct {
	Semester int   `json:"_id"`
	Count    int64 `json:"count"`
}
