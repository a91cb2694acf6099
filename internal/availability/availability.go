package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/elegance-studio/salon-service/internal/domain"
)

const dateLayout = "2006-01-02"

// Weekday derives the lowercase weekday name from a "YYYY-MM-DD" date.
// The date is parsed in UTC so the result does not depend on the host
// timezone.
func Weekday(date string) (string, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return strings.ToLower(t.Weekday().String()), nil
}

// Matches reports whether the member can serve the given service at the
// given weekday and time. A member qualifies when it is active, has a
// working interval on that weekday, offers the service, and the time
// falls within the interval (inclusive bounds, lexicographic "HH:MM"
// comparison).
func Matches(m *domain.StaffMember, weekday, clock, service string) bool {
	if !m.IsActive() {
		return false
	}
	shift := m.ShiftOn(weekday)
	if shift == nil {
		return false
	}
	if !m.HasSpecialty(service) {
		return false
	}
	return shift.Contains(clock)
}

// Filter returns the members able to serve the service at the requested
// date and time, in their original order. An unparseable date is
// reported as an error rather than an empty result.
func Filter(members []domain.StaffMember, date, clock, service string) ([]domain.StaffMember, error) {
	weekday, err := Weekday(date)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.StaffMember, 0, len(members))
	for i := range members {
		if Matches(&members[i], weekday, clock, service) {
			matched = append(matched, members[i])
		}
	}
	return matched, nil
}
