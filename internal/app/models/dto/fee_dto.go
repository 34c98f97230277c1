package dto

// CreateFeesForAllCastesRequest sets up one fee per caste tier for a semester
type CreateFeesForAllCastesRequest struct {
	Semester int                `json:"semester"`
	Amounts  map[string]float64 `json:"amounts"`
}

// InvoiceResponse points at the invoice document of a fee
type InvoiceResponse struct {
	InvoiceURL string `json:"invoiceUrl"`
}
