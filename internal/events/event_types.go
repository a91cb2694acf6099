package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffAdded           EventType = "staff_added"
	EventStaffUpdated         EventType = "staff_updated"
	EventStaffRemoved         EventType = "staff_removed"
	EventAppointmentBooked    EventType = "appointment_booked"
	EventAppointmentCancelled EventType = "appointment_cancelled"
)

// Event represents a domain event emitted by the stores.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffAddedPayload payload.
type StaffAddedPayload struct {
	StaffID int    `json:"staff_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// StaffUpdatedPayload payload.
type StaffUpdatedPayload struct {
	StaffID int `json:"staff_id"`
}

// StaffRemovedPayload payload.
type StaffRemovedPayload struct {
	StaffID int `json:"staff_id"`
}

// AppointmentBookedPayload payload.
type AppointmentBookedPayload struct {
	AppointmentID int    `json:"appointment_id"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Service       string `json:"service"`
	StaffID       int    `json:"staff_id"`
}

// AppointmentCancelledPayload payload.
type AppointmentCancelledPayload struct {
	AppointmentID int `json:"appointment_id"`
}
