package models

// Identity is a registered (name, userId, role) tuple. UserID is the roll number of a
// student or the faculty id of a staff member and doubles as the request credential.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// IdentitySummary is the part of an identity joined into other records
type IdentitySummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
}
