package store

import "github.com/elegance-studio/salon-service/internal/domain"

// SeedStaff returns the default roster written to an empty directory on
// first start.
func SeedStaff() []domain.StaffMember {
	return []domain.StaffMember{
		{
			ID:          1,
			Name:        "Sophia Laurent",
			Email:       "sophia@elegance.salon",
			Phone:       "555-0101",
			Role:        "Senior Stylist",
			Specialties: []string{"Haircut", "Balayage", "Blowout"},
			Rating:      4.9,
			Commission:  0.4,
			Experience:  "12 years",
			Schedule: domain.WeekSchedule{
				"monday":    {Start: "09:00", End: "17:00"},
				"tuesday":   {Start: "09:00", End: "17:00"},
				"wednesday": {Start: "09:00", End: "17:00"},
				"thursday":  {Start: "11:00", End: "19:00"},
				"friday":    {Start: "09:00", End: "17:00"},
			},
			Status: domain.StaffStatusActive,
		},
		{
			ID:          2,
			Name:        "Mia Okafor",
			Email:       "mia@elegance.salon",
			Phone:       "555-0102",
			Role:        "Color Specialist",
			Specialties: []string{"Hair Coloring", "Highlights", "Balayage"},
			Rating:      4.7,
			Commission:  0.35,
			Experience:  "8 years",
			Schedule: domain.WeekSchedule{
				"tuesday":   {Start: "10:00", End: "18:00"},
				"wednesday": {Start: "10:00", End: "18:00"},
				"thursday":  {Start: "10:00", End: "18:00"},
				"friday":    {Start: "10:00", End: "18:00"},
				"saturday":  {Start: "09:00", End: "15:00"},
			},
			Status: domain.StaffStatusActive,
		},
		{
			ID:          3,
			Name:        "Ava Moreau",
			Email:       "ava@elegance.salon",
			Phone:       "555-0103",
			Role:        "Nail Artist",
			Specialties: []string{"Manicure", "Pedicure", "Nail Art"},
			Rating:      4.8,
			Commission:  0.3,
			Experience:  "6 years",
			Schedule: domain.WeekSchedule{
				"monday":   {Start: "09:00", End: "17:00"},
				"tuesday":  {Start: "09:00", End: "17:00"},
				"friday":   {Start: "09:00", End: "17:00"},
				"saturday": {Start: "09:00", End: "17:00"},
			},
			Status: domain.StaffStatusActive,
		},
		{
			ID:          4,
			Name:        "Elena Rossi",
			Email:       "elena@elegance.salon",
			Phone:       "555-0104",
			Role:        "Spa Therapist",
			Specialties: []string{"Facial", "Massage"},
			Rating:      4.6,
			Commission:  0.3,
			Experience:  "10 years",
			Schedule: domain.WeekSchedule{
				"wednesday": {Start: "09:00", End: "17:00"},
				"thursday":  {Start: "09:00", End: "17:00"},
				"friday":    {Start: "12:00", End: "20:00"},
				"saturday":  {Start: "09:00", End: "17:00"},
			},
			Status: domain.StaffStatusActive,
		},
	}
}
