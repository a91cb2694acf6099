package domain

// StaffPatch is an explicit partial update for a StaffMember. Nil fields
// keep the existing value; set fields overwrite it. The member id is not
// patchable.
type StaffPatch struct {
	Name        *string      `json:"name,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Specialties []string     `json:"specialties,omitempty"`
	Rating      *float64     `json:"rating,omitempty"`
	Commission  *float64     `json:"commission,omitempty"`
	Experience  *string      `json:"experience,omitempty"`
	Schedule    WeekSchedule `json:"schedule,omitempty"`
	Status      *StaffStatus `json:"status,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
}

// ApplyTo merges the patch over the member, field by field.
func (p StaffPatch) ApplyTo(m *StaffMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Specialties != nil {
		m.Specialties = p.Specialties
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Commission != nil {
		m.Commission = *p.Commission
	}
	if p.Experience != nil {
		m.Experience = *p.Experience
	}
	if p.Schedule != nil {
		m.Schedule = p.Schedule
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Avatar != nil {
		m.Avatar = *p.Avatar
	}
}
