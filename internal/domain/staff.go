package domain

import "strings"

// StaffStatus enumerates roster lifecycle states.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

// Shift is a working interval within a single day, bounds inclusive.
// Times are zero-padded 24-hour "HH:MM" strings, so they order
// lexicographically.
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether t falls within the shift, inclusive.
func (s Shift) Contains(t string) bool {
	return s.Start <= t && t <= s.End
}

// WeekSchedule maps lowercase weekday names ("monday".."sunday") to
// working intervals. A missing or nil entry marks a day off.
type WeekSchedule map[string]*Shift

// StaffMember models a stylist or other salon employee.
type StaffMember struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Role        string       `json:"role"`
	Specialties []string     `json:"specialties"`
	Rating      float64      `json:"rating"`
	Commission  float64      `json:"commission"`
	Experience  string       `json:"experience,omitempty"`
	Schedule    WeekSchedule `json:"schedule"`
	Status      StaffStatus  `json:"status"`
	Avatar      string       `json:"avatar,omitempty"`
}

// IsActive reports whether the member is on the active roster.
func (m *StaffMember) IsActive() bool {
	return m.Status == StaffStatusActive
}

// ShiftOn returns the working interval for the given weekday, or nil on
// a day off.
func (m *StaffMember) ShiftOn(weekday string) *Shift {
	if m.Schedule == nil {
		return nil
	}
	return m.Schedule[weekday]
}

// HasSpecialty reports whether the member offers the given service.
func (m *StaffMember) HasSpecialty(service string) bool {
	for _, s := range m.Specialties {
		if s == service {
			return true
		}
	}
	return false
}

// EmailEquals compares emails case-insensitively.
func (m *StaffMember) EmailEquals(email string) bool {
	return strings.EqualFold(m.Email, email)
}
