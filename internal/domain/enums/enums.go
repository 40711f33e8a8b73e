// Package enums defines the closed label sets used by the caregiver domain
// and a single normalizer shared by the API-input and storage boundaries.
package enums

import (
	"fmt"
	"strings"
)

// Member pairs a symbolic name (MALE) with the canonical value stored in the
// database (Male).
type Member struct {
	Name  string
	Value string
}

type Enum struct {
	Label   string
	Members []Member
}

var (
	Gender = Enum{
		Label: "gender",
		Members: []Member{
			{Name: "MALE", Value: "Male"},
			{Name: "FEMALE", Value: "Female"},
		},
	}

	CaregivingType = Enum{
		Label: "caregiving_type",
		Members: []Member{
			{Name: "BABYSITTER", Value: "Babysitter"},
			{Name: "ELDERLY_CARE", Value: "ElderlyCare"},
			{Name: "PLAYMATE", Value: "Playmate"},
		},
	}

	// Appointment statuses are stored lowercase, unlike the other two sets.
	AppointmentStatus = Enum{
		Label: "appointment_status",
		Members: []Member{
			{Name: "CONFIRM", Value: "confirm"},
			{Name: "DECLINE", Value: "decline"},
			{Name: "PENDING", Value: "pending"},
			{Name: "CANCEL", Value: "cancel"},
		},
	}
)

type InvalidValueError struct {
	Value string
	Enum  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}

// Normalize maps any accepted representation of a member to its canonical
// value. Matching order is fixed: symbolic name (case-insensitive) first,
// then exact canonical value, then canonical value case-insensitively. A
// name match always wins over a value match.
func (e Enum) Normalize(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}

	upper := strings.ToUpper(trimmed)
	for _, member := range e.Members {
		if member.Name == upper {
			return member.Value, nil
		}
	}

	for _, member := range e.Members {
		if member.Value == trimmed {
			return member.Value, nil
		}
	}

	for _, member := range e.Members {
		if strings.EqualFold(member.Value, trimmed) {
			return member.Value, nil
		}
	}

	return "", &InvalidValueError{Value: trimmed, Enum: e.Label}
}

// NormalizePtr treats nil and blank strings as absence. Optional enum columns
// go through here so an omitted field stays NULL instead of becoming "".
func (e Enum) NormalizePtr(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	normalized, err := e.Normalize(*value)
	if err != nil {
		return nil, err
	}
	if normalized == "" {
		return nil, nil
	}
	return &normalized, nil
}

// Values lists the canonical values in declaration order.
func (e Enum) Values() []string {
	values := make([]string, 0, len(e.Members))
	for _, member := range e.Members {
		values = append(values, member.Value)
	}
	return values
}
