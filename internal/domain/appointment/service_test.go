package appointment

import (
	"context"
	"errors"
	"testing"

	"caregiver-app-go/internal/domain/enums"
)

type fakeAppointmentRepo struct {
	appointments map[uint]*Appointment
	nextID       uint
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uint]*Appointment), nextID: 1}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *Appointment) error {
	appointment.AppointmentID = r.nextID
	r.nextID++
	copied := *appointment
	r.appointments[appointment.AppointmentID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, appointmentID uint) (*Appointment, error) {
	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, offset, limit int) ([]Appointment, error) {
	result := make([]Appointment, 0, len(r.appointments))
	for id := uint(1); id < r.nextID; id++ {
		if appointment, ok := r.appointments[id]; ok {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) ListByCaregiver(ctx context.Context, caregiverUserID uint) ([]Appointment, error) {
	result := make([]Appointment, 0)
	for id := uint(1); id < r.nextID; id++ {
		if appointment, ok := r.appointments[id]; ok && appointment.CaregiverUserID == caregiverUserID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) ListByMember(ctx context.Context, memberUserID uint) ([]Appointment, error) {
	result := make([]Appointment, 0)
	for id := uint(1); id < r.nextID; id++ {
		if appointment, ok := r.appointments[id]; ok && appointment.MemberUserID == memberUserID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) Save(ctx context.Context, appointment *Appointment) error {
	if _, ok := r.appointments[appointment.AppointmentID]; !ok {
		return ErrAppointmentNotFound
	}
	copied := *appointment
	r.appointments[appointment.AppointmentID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, appointmentID uint) (bool, error) {
	if _, ok := r.appointments[appointmentID]; !ok {
		return false, nil
	}
	delete(r.appointments, appointmentID)
	return true, nil
}

func strPtr(s string) *string { return &s }

func TestCreateAppointmentNormalizesStatus(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	// "Confirm" is a case variant of the lowercase canonical value and is
	// normalized, not rejected.
	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CaregiverUserID: 7,
		MemberUserID:    3,
		Status:          strPtr("Confirm"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status == nil || *created.Status != "confirm" {
		t.Fatalf("status = %v, want confirm", created.Status)
	}
}

func TestCreateAppointmentAcceptsSymbolicName(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CaregiverUserID: 7,
		MemberUserID:    3,
		Status:          strPtr("CANCEL"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status == nil || *created.Status != "cancel" {
		t.Fatalf("status = %v, want cancel", created.Status)
	}
}

func TestCreateAppointmentRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	_, err := svc.Create(context.Background(), CreateAppointmentInput{
		CaregiverUserID: 7,
		MemberUserID:    3,
		Status:          strPtr("done"),
	})
	var invalid *enums.InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("create error = %v, want InvalidValueError", err)
	}
}

func TestUpdateAppointmentPartialKeepsStatus(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CaregiverUserID: 7,
		MemberUserID:    3,
		Status:          strPtr("pending"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	hours := 4.5
	updated, err := svc.Update(context.Background(), created.AppointmentID, UpdateAppointmentInput{WorkHours: &hours})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.WorkHours == nil || *updated.WorkHours != 4.5 {
		t.Fatalf("work hours = %v, want 4.5", updated.WorkHours)
	}
	if updated.Status == nil || *updated.Status != "pending" {
		t.Fatalf("status changed: %v", updated.Status)
	}
}

func TestUpdateAppointmentStatusRenormalized(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	created, err := svc.Create(context.Background(), CreateAppointmentInput{CaregiverUserID: 7, MemberUserID: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.AppointmentID, UpdateAppointmentInput{Status: strPtr("DECLINE")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status == nil || *updated.Status != "decline" {
		t.Fatalf("status = %v, want decline", updated.Status)
	}
}

func TestListAppointmentsByParty(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	pairs := []struct{ caregiver, member uint }{{7, 3}, {7, 5}, {8, 3}}
	for _, pair := range pairs {
		if _, err := svc.Create(context.Background(), CreateAppointmentInput{
			CaregiverUserID: pair.caregiver,
			MemberUserID:    pair.member,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byCaregiver, err := svc.ListByCaregiver(context.Background(), 7)
	if err != nil {
		t.Fatalf("list by caregiver: %v", err)
	}
	if len(byCaregiver) != 2 {
		t.Fatalf("got %d appointments for caregiver 7, want 2", len(byCaregiver))
	}

	byMember, err := svc.ListByMember(context.Background(), 3)
	if err != nil {
		t.Fatalf("list by member: %v", err)
	}
	if len(byMember) != 2 {
		t.Fatalf("got %d appointments for member 3, want 2", len(byMember))
	}
}

func TestDeleteAppointmentAbsent(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo())

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("delete error = %v, want ErrAppointmentNotFound", err)
	}
}
