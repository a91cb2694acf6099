package domain

// Appointment records a customer booking. The customer is identified by
// email only; no referential integrity is enforced against staff ids.
// Details carries any extra booking fields the caller supplied, stored
// and returned verbatim.
type Appointment struct {
	ID      int            `json:"id"`
	Email   string         `json:"email"`
	Date    string         `json:"date,omitempty"`
	Time    string         `json:"time,omitempty"`
	Service string         `json:"service,omitempty"`
	StaffID int            `json:"staff_id,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}
