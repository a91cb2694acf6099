package dto

import "github.com/elegance-studio/salon-service/internal/domain"

// StaffCreateRequest payload for adding a staff member.
type StaffCreateRequest struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Role        string              `json:"role"`
	Specialties []string            `json:"specialties"`
	Rating      float64             `json:"rating"`
	Commission  float64             `json:"commission"`
	Experience  string              `json:"experience"`
	Schedule    domain.WeekSchedule `json:"schedule"`
	Avatar      string              `json:"avatar"`
}

// ToMember converts the request into a candidate member. Id and status
// are assigned by the directory.
func (r StaffCreateRequest) ToMember() domain.StaffMember {
	return domain.StaffMember{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        r.Role,
		Specialties: r.Specialties,
		Rating:      r.Rating,
		Commission:  r.Commission,
		Experience:  r.Experience,
		Schedule:    r.Schedule,
		Avatar:      r.Avatar,
	}
}

// StaffUpdateRequest payload for a partial update. Absent fields keep
// their current values.
type StaffUpdateRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Phone       *string             `json:"phone"`
	Role        *string             `json:"role"`
	Specialties []string            `json:"specialties"`
	Rating      *float64            `json:"rating"`
	Commission  *float64            `json:"commission"`
	Experience  *string             `json:"experience"`
	Schedule    domain.WeekSchedule `json:"schedule"`
	Status      *domain.StaffStatus `json:"status"`
	Avatar      *string             `json:"avatar"`
}

// ToPatch converts the request into a domain patch.
func (r StaffUpdateRequest) ToPatch() domain.StaffPatch {
	return domain.StaffPatch{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Role:        r.Role,
		Specialties: r.Specialties,
		Rating:      r.Rating,
		Commission:  r.Commission,
		Experience:  r.Experience,
		Schedule:    r.Schedule,
		Status:      r.Status,
		Avatar:      r.Avatar,
	}
}

// StaffResponse payload.
type StaffResponse struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Role        string              `json:"role"`
	Specialties []string            `json:"specialties"`
	Rating      float64             `json:"rating"`
	Commission  float64             `json:"commission"`
	Experience  string              `json:"experience,omitempty"`
	Schedule    domain.WeekSchedule `json:"schedule"`
	Status      domain.StaffStatus  `json:"status"`
	Avatar      string              `json:"avatar,omitempty"`
}
