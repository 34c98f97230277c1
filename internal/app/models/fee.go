package models

// FeeStatus is the payment state of a fee record
type FeeStatus string

const (
	FeePaid   FeeStatus = "paid"
	FeeUnpaid FeeStatus = "unpaid"
)

// FeeCastes is the fixed fee-tier enumeration, in creation order
var FeeCastes = []string{"Open", "OBC", "EWS", "ST", "SC", "NT"}

// IsFeeCaste reports whether caste is one of FeeCastes
func IsFeeCaste(caste string) bool {
	for _, c := range FeeCastes {
		if c == caste {
			return true
		}
	}
	return false
}

// Fee is a semester fee owed by a student
type Fee struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student"`
	Semester   int       `json:"semester"`
	Amount     float64   `json:"amount"`
	Status     FeeStatus `json:"status"`
	InvoiceURL string    `json:"invoiceUrl,omitempty"`
	Caste      string    `json:"caste,omitempty"`
}
