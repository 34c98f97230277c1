package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Role defines the identity role type
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// StaffRoles are the roles allowed to manage the student directory
var StaffRoles = []Role{RoleFaculty, RoleAdmin}

// IsSignupRole reports whether r can be chosen at signup
func (r Role) IsSignupRole() bool {
	return r == RoleStudent || r == RoleFaculty
}

// Date accepts both "2006-01-02" and RFC3339 on input and always writes RFC3339
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate wraps t
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses the formats accepted by Date
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return Date{Time: t}, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}
