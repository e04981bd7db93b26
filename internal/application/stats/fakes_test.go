package stats

import (
	"context"
	"sort"
	"time"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/repository"
)

// In-memory fakes for the read-only repositories. Each fake fails every
// query when err is set, which is how fan-out abort behavior is exercised.

type fakeCustomerRepo struct {
	customers map[string]*model.Customer
	err       error
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	customer, ok := f.customers[id]
	if !ok {
		return nil, &repository.NotFoundError{Resource: "customer"}
	}
	return customer, nil
}

type fakePetRepo struct {
	pets []*model.Pet
	err  error
}

func (f *fakePetRepo) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, p := range f.pets {
		if p.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (f *fakePetRepo) ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Pet, error) {
	if f.err != nil {
		return nil, f.err
	}
	var pets []*model.Pet
	for _, p := range f.pets {
		if p.CustomerID == customerID {
			pets = append(pets, p)
		}
	}
	sort.Slice(pets, func(i, j int) bool { return pets[i].CreatedAt.After(pets[j].CreatedAt) })
	if len(pets) > limit {
		pets = pets[:limit]
	}
	return pets, nil
}

type fakeAppointmentRepo struct {
	appointments []*model.Appointment
	err          error
}

func (f *fakeAppointmentRepo) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, a := range f.appointments {
		if a.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) CountUpcomingByCustomer(ctx context.Context, customerID string, from time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, a := range f.appointments {
		if a.CustomerID != customerID {
			continue
		}
		if a.Status != model.StatusPending && a.Status != model.StatusConfirmed {
			continue
		}
		if a.ScheduledAt.Before(from) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeAppointmentRepo) CountPending(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, a := range f.appointments {
		if a.Status == model.StatusPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, a := range f.appointments {
		if a.Status == model.StatusCancelled {
			continue
		}
		if inRange(a.ScheduledAt, from, to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var appts []*model.Appointment
	for _, a := range f.appointments {
		if a.CustomerID == customerID {
			appts = append(appts, a)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].CreatedAt.After(appts[j].CreatedAt) })
	if len(appts) > limit {
		appts = appts[:limit]
	}
	return appts, nil
}

func (f *fakeAppointmentRepo) ListCompletedByCustomer(ctx context.Context, customerID string) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var appts []*model.Appointment
	for _, a := range f.appointments {
		if a.CustomerID == customerID && a.Status == model.StatusCompleted {
			appts = append(appts, a)
		}
	}
	return appts, nil
}

func (f *fakeAppointmentRepo) ListScheduledBetween(ctx context.Context, from, to time.Time, status string, limit int) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var appts []*model.Appointment
	for _, a := range f.appointments {
		if !inRange(a.ScheduledAt, from, to) {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		appts = append(appts, a)
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].ScheduledAt.Before(appts[j].ScheduledAt) })
	if len(appts) > limit {
		appts = appts[:limit]
	}
	return appts, nil
}

func (f *fakeAppointmentRepo) ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]*model.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var appts []*model.Appointment
	for _, a := range f.appointments {
		if !a.CreatedAt.Before(since) {
			appts = append(appts, a)
		}
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].CreatedAt.After(appts[j].CreatedAt) })
	if len(appts) > limit {
		appts = appts[:limit]
	}
	return appts, nil
}

func (f *fakeAppointmentRepo) SumCompletedPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	total := 0.0
	for _, a := range f.appointments {
		if a.Status != model.StatusCompleted || a.PaymentStatus != model.PaymentStatusPaid {
			continue
		}
		if inRange(a.ScheduledAt, from, to) {
			total += a.Total
		}
	}
	return total, nil
}

type fakeWalkInRepo struct {
	walkIns []*model.WalkIn
	err     error
}

func (f *fakeWalkInRepo) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, w := range f.walkIns {
		if w.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeWalkInRepo) CountPendingByCustomer(ctx context.Context, customerID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, w := range f.walkIns {
		if w.CustomerID == customerID && w.Status == model.StatusPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeWalkInRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, w := range f.walkIns {
		if w.Status == model.StatusCancelled {
			continue
		}
		if inRange(w.CreatedAt, from, to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeWalkInRepo) ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.WalkIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var walkIns []*model.WalkIn
	for _, w := range f.walkIns {
		if w.CustomerID == customerID {
			walkIns = append(walkIns, w)
		}
	}
	sort.Slice(walkIns, func(i, j int) bool { return walkIns[i].CreatedAt.After(walkIns[j].CreatedAt) })
	if len(walkIns) > limit {
		walkIns = walkIns[:limit]
	}
	return walkIns, nil
}

func (f *fakeWalkInRepo) ListCompletedByCustomer(ctx context.Context, customerID string) ([]*model.WalkIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var walkIns []*model.WalkIn
	for _, w := range f.walkIns {
		if w.CustomerID == customerID && w.Status == model.StatusCompleted {
			walkIns = append(walkIns, w)
		}
	}
	return walkIns, nil
}

func (f *fakeWalkInRepo) ListCreatedBetween(ctx context.Context, from, to time.Time, status string, limit int) ([]*model.WalkIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var walkIns []*model.WalkIn
	for _, w := range f.walkIns {
		if !inRange(w.CreatedAt, from, to) {
			continue
		}
		if status != "" && w.Status != status {
			continue
		}
		walkIns = append(walkIns, w)
	}
	sort.Slice(walkIns, func(i, j int) bool { return walkIns[i].CreatedAt.Before(walkIns[j].CreatedAt) })
	if len(walkIns) > limit {
		walkIns = walkIns[:limit]
	}
	return walkIns, nil
}

func (f *fakeWalkInRepo) ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]*model.WalkIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var walkIns []*model.WalkIn
	for _, w := range f.walkIns {
		if !w.CreatedAt.Before(since) {
			walkIns = append(walkIns, w)
		}
	}
	sort.Slice(walkIns, func(i, j int) bool { return walkIns[i].CreatedAt.After(walkIns[j].CreatedAt) })
	if len(walkIns) > limit {
		walkIns = walkIns[:limit]
	}
	return walkIns, nil
}

func (f *fakeWalkInRepo) SumCompletedPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	total := 0.0
	for _, w := range f.walkIns {
		if w.Status != model.StatusCompleted || w.PaymentStatus != model.PaymentStatusPaid {
			continue
		}
		if inRange(w.CreatedAt, from, to) {
			total += w.Total
		}
	}
	return total, nil
}

type fakeSessionRepo struct {
	sessions []*model.Session
	err      error
}

func (f *fakeSessionRepo) ListByBookingIDs(ctx context.Context, bookingIDs []string) ([]*model.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]struct{}, len(bookingIDs))
	for _, id := range bookingIDs {
		wanted[id] = struct{}{}
	}
	var sessions []*model.Session
	for _, s := range f.sessions {
		if _, ok := wanted[s.BookingID]; ok {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

type fakeServiceRepo struct {
	names map[string]string
	err   error
}

func (f *fakeServiceRepo) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

type fakePaymentRepo struct {
	payments []*model.Payment
	err      error
}

func (f *fakePaymentRepo) ListCompletedSince(ctx context.Context, since time.Time, limit int) ([]*model.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var payments []*model.Payment
	for _, p := range f.payments {
		if p.Status == model.PaymentCompleted && !p.PaidAt.Before(since) {
			payments = append(payments, p)
		}
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].PaidAt.After(payments[j].PaidAt) })
	if len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
