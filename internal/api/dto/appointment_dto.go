package dto

import "github.com/elegance-studio/salon-service/internal/domain"

// AppointmentCreateRequest payload for booking.
type AppointmentCreateRequest struct {
	Email   string         `json:"email"`
	Date    string         `json:"date"`
	Time    string         `json:"time"`
	Service string         `json:"service"`
	StaffID int            `json:"staff_id"`
	Details map[string]any `json:"details"`
}

// ToAppointment converts the request into a booking record. The id is
// assigned by the ledger.
func (r AppointmentCreateRequest) ToAppointment() domain.Appointment {
	return domain.Appointment{
		Email:   r.Email,
		Date:    r.Date,
		Time:    r.Time,
		Service: r.Service,
		StaffID: r.StaffID,
		Details: r.Details,
	}
}

// AppointmentResponse payload.
type AppointmentResponse struct {
	ID      int            `json:"id"`
	Email   string         `json:"email"`
	Date    string         `json:"date,omitempty"`
	Time    string         `json:"time,omitempty"`
	Service string         `json:"service,omitempty"`
	StaffID int            `json:"staff_id,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}
