package stats

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/errors"
)

func newCustomerStatsAggregator(
	customers *fakeCustomerRepo,
	pets *fakePetRepo,
	appointments *fakeAppointmentRepo,
	walkIns *fakeWalkInRepo,
	sessions *fakeSessionRepo,
	services *fakeServiceRepo,
) *CustomerStatsAggregator {
	if customers == nil {
		customers = &fakeCustomerRepo{}
	}
	if pets == nil {
		pets = &fakePetRepo{}
	}
	if appointments == nil {
		appointments = &fakeAppointmentRepo{}
	}
	if walkIns == nil {
		walkIns = &fakeWalkInRepo{}
	}
	if sessions == nil {
		sessions = &fakeSessionRepo{}
	}
	if services == nil {
		services = &fakeServiceRepo{}
	}
	return NewCustomerStatsAggregator(customers, pets, appointments, walkIns, sessions, services)
}

func TestGetCustomerStatsRequiresCustomerID(t *testing.T) {
	agg := newCustomerStatsAggregator(nil, nil, nil, nil, nil, nil)

	_, err := agg.GetCustomerStats(context.Background(), "")
	var appErr *errors.ApplicationError
	if !stderrors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetCustomerStatsMissingCustomerIsNotFound(t *testing.T) {
	agg := newCustomerStatsAggregator(
		&fakeCustomerRepo{customers: map[string]*model.Customer{}},
		nil, nil, nil, nil, nil,
	)

	_, err := agg.GetCustomerStats(context.Background(), "ghost")
	var appErr *errors.ApplicationError
	if !stderrors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetCustomerStatsEmptyCustomerYieldsEmptySnapshot(t *testing.T) {
	agg := newCustomerStatsAggregator(
		&fakeCustomerRepo{customers: map[string]*model.Customer{
			"cust-1": {ID: "cust-1", Name: "Ana"},
		}},
		nil, nil, nil, nil, nil,
	)

	stats, err := agg.GetCustomerStats(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("empty customer must not fail: %v", err)
	}
	if stats.PetCount != 0 || stats.AppointmentCount != 0 || stats.WalkInCount != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.TotalSpent != "0.00" {
		t.Fatalf("total_spent = %q, want %q", stats.TotalSpent, "0.00")
	}
	if stats.RecentAppointments == nil || len(stats.RecentAppointments) != 0 {
		t.Fatalf("recent_appointments must be empty, not nil: %+v", stats.RecentAppointments)
	}
	if stats.RecentWalkIns == nil || len(stats.RecentWalkIns) != 0 {
		t.Fatalf("recent_walk_ins must be empty, not nil: %+v", stats.RecentWalkIns)
	}
	if stats.UserPets == nil || len(stats.UserPets) != 0 {
		t.Fatalf("user_pets must be empty, not nil: %+v", stats.UserPets)
	}
}

func TestGetCustomerStatsFullSnapshot(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	now := base.AddDate(0, 0, 10)

	customerRepo := &fakeCustomerRepo{customers: map[string]*model.Customer{
		"cust-1": {ID: "cust-1", Name: "Ana"},
	}}
	petRepo := &fakePetRepo{pets: []*model.Pet{
		{ID: "pet-1", CustomerID: "cust-1", Name: "Bolt", CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "pet-2", CustomerID: "cust-1", Name: "Miso", CreatedAt: base.AddDate(0, 0, 2)},
	}}
	appointmentRepo := &fakeAppointmentRepo{appointments: []*model.Appointment{
		{
			ID: "appt-1", CustomerID: "cust-1", PetID: "pet-1", PetName: "Bolt",
			ServiceID: "svc-1", Status: model.StatusCompleted, Total: 400.00,
			ScheduledAt: base.AddDate(0, 0, 5).Add(10 * time.Hour),
			CreatedAt:   base.AddDate(0, 0, 4),
		},
		{
			ID: "appt-2", CustomerID: "cust-1", PetID: "pet-1", PetName: "Bolt",
			ServiceID: "svc-1", Status: model.StatusConfirmed, Total: 350.00,
			ScheduledAt: now.AddDate(0, 0, 3).Add(10 * time.Hour),
			CreatedAt:   base.AddDate(0, 0, 9),
		},
		{
			ID: "appt-other", CustomerID: "cust-2", PetID: "pet-9", Status: model.StatusCompleted, Total: 999.00,
			ScheduledAt: base.AddDate(0, 0, 5), CreatedAt: base.AddDate(0, 0, 5),
		},
	}}
	walkInRepo := &fakeWalkInRepo{walkIns: []*model.WalkIn{
		{
			ID: "walk-1", CustomerID: "cust-1", PetID: "pet-2", PetName: "Miso",
			ServiceIDs: []string{"svc-2"}, Status: model.StatusCompleted, Total: 200.00,
			CreatedAt: base.AddDate(0, 0, 6).Add(11 * time.Hour),
		},
		{
			ID: "walk-2", CustomerID: "cust-1", PetID: "pet-2", PetName: "Miso",
			ServiceIDs: []string{"svc-2"}, Status: model.StatusPending, Total: 150.00,
			CreatedAt: base.AddDate(0, 0, 8),
		},
	}}
	sessionStart := base.AddDate(0, 0, 5).Add(10 * time.Hour)
	sessionEnd := sessionStart.Add(45 * time.Minute)
	sessionRepo := &fakeSessionRepo{sessions: []*model.Session{
		{ID: "sess-1", BookingID: "appt-1", StartTime: sessionStart, EndTime: sessionEnd, DurationMinutes: 45, Status: "completed"},
	}}
	serviceRepo := &fakeServiceRepo{names: map[string]string{
		"svc-1": "Full Groom",
		"svc-2": "Nail Trim",
	}}

	agg := newCustomerStatsAggregator(customerRepo, petRepo, appointmentRepo, walkInRepo, sessionRepo, serviceRepo)
	agg.now = func() time.Time { return now }

	stats, err := agg.GetCustomerStats(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.PetCount != 2 {
		t.Errorf("pet_count = %d, want 2", stats.PetCount)
	}
	if stats.AppointmentCount != 2 {
		t.Errorf("appointment_count = %d, want 2", stats.AppointmentCount)
	}
	if stats.WalkInCount != 2 {
		t.Errorf("walk_in_count = %d, want 2", stats.WalkInCount)
	}
	if stats.PendingWalkInsCount != 1 {
		t.Errorf("pending_walk_ins_count = %d, want 1", stats.PendingWalkInsCount)
	}
	if stats.UpcomingAppointmentsCount != 1 {
		t.Errorf("upcoming_appointments_count = %d, want 1", stats.UpcomingAppointmentsCount)
	}
	if stats.TotalSpent != "600.00" {
		t.Errorf("total_spent = %q, want %q", stats.TotalSpent, "600.00")
	}

	if len(stats.RecentAppointments) != 2 {
		t.Fatalf("expected 2 recent appointments, got %d", len(stats.RecentAppointments))
	}
	// Newest first by creation time.
	if stats.RecentAppointments[0].ID != "appt-2" || stats.RecentAppointments[1].ID != "appt-1" {
		t.Errorf("recent appointments order wrong: %q, %q", stats.RecentAppointments[0].ID, stats.RecentAppointments[1].ID)
	}
	if stats.RecentAppointments[0].ServiceName != "Full Groom" {
		t.Errorf("service name = %q, want %q", stats.RecentAppointments[0].ServiceName, "Full Groom")
	}
	if stats.RecentAppointments[0].Session != nil {
		t.Errorf("appt-2 should carry no session")
	}
	session := stats.RecentAppointments[1].Session
	if session == nil {
		t.Fatalf("appt-1 should carry its session")
	}
	if session.DurationMinutes != 45 || session.EndTime == nil || !session.EndTime.Equal(sessionEnd) {
		t.Errorf("session = %+v, want 45 minutes ending %v", session, sessionEnd)
	}

	if len(stats.RecentWalkIns) != 2 {
		t.Fatalf("expected 2 recent walk-ins, got %d", len(stats.RecentWalkIns))
	}
	if stats.RecentWalkIns[0].ID != "walk-2" {
		t.Errorf("recent walk-ins order wrong: first = %q", stats.RecentWalkIns[0].ID)
	}
	if stats.RecentWalkIns[1].ServiceName != "Nail Trim" {
		t.Errorf("walk-in service name = %q, want %q", stats.RecentWalkIns[1].ServiceName, "Nail Trim")
	}

	if len(stats.UserPets) != 2 {
		t.Fatalf("expected 2 pets, got %d", len(stats.UserPets))
	}
	// Newest pet first.
	if stats.UserPets[0].ID != "pet-2" || stats.UserPets[1].ID != "pet-1" {
		t.Errorf("pet order wrong: %q, %q", stats.UserPets[0].ID, stats.UserPets[1].ID)
	}
	wantMisoGroomed := base.AddDate(0, 0, 6).Add(11 * time.Hour)
	if stats.UserPets[0].LastGroomingDate == nil || !stats.UserPets[0].LastGroomingDate.Equal(wantMisoGroomed) {
		t.Errorf("pet-2 last grooming = %v, want %v", stats.UserPets[0].LastGroomingDate, wantMisoGroomed)
	}
	wantBoltGroomed := base.AddDate(0, 0, 5).Add(10 * time.Hour)
	if stats.UserPets[1].LastGroomingDate == nil || !stats.UserPets[1].LastGroomingDate.Equal(wantBoltGroomed) {
		t.Errorf("pet-1 last grooming = %v, want %v", stats.UserPets[1].LastGroomingDate, wantBoltGroomed)
	}
}

func TestGetCustomerStatsPetNeverGroomedHasNilDate(t *testing.T) {
	customerRepo := &fakeCustomerRepo{customers: map[string]*model.Customer{
		"cust-1": {ID: "cust-1", Name: "Ana"},
	}}
	petRepo := &fakePetRepo{pets: []*model.Pet{
		{ID: "pet-1", CustomerID: "cust-1", Name: "Bolt"},
	}}

	agg := newCustomerStatsAggregator(customerRepo, petRepo, nil, nil, nil, nil)
	stats, err := agg.GetCustomerStats(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.UserPets) != 1 {
		t.Fatalf("expected 1 pet, got %d", len(stats.UserPets))
	}
	if stats.UserPets[0].LastGroomingDate != nil {
		t.Fatalf("never-groomed pet must have nil last grooming date, got %v", stats.UserPets[0].LastGroomingDate)
	}
}

func TestGetCustomerStatsFailsWhenOneQueryFails(t *testing.T) {
	boom := stderrors.New("store unreachable")
	agg := newCustomerStatsAggregator(
		&fakeCustomerRepo{customers: map[string]*model.Customer{
			"cust-1": {ID: "cust-1", Name: "Ana"},
		}},
		&fakePetRepo{err: boom},
		nil, nil, nil, nil,
	)

	_, err := agg.GetCustomerStats(context.Background(), "cust-1")
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected wrapped query failure, got %v", err)
	}
}
