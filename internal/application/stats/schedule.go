package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/repository"
)

const scheduleLimit = 20

// FilterAll is the sentinel status filter that applies no status predicate.
const FilterAll = "all"

// ScheduleFilter retrieves a single day's bookings of both variants, ordered
// by their time on the schedule: appointments by scheduled time, walk-ins by
// check-in (creation) time.
type ScheduleFilter struct {
	appointments repository.AppointmentRepository
	walkIns      repository.WalkInRepository
	services     repository.ServiceRepository
	now          func() time.Time
}

func NewScheduleFilter(
	appointments repository.AppointmentRepository,
	walkIns repository.WalkInRepository,
	services repository.ServiceRepository,
) *ScheduleFilter {
	return &ScheduleFilter{
		appointments: appointments,
		walkIns:      walkIns,
		services:     services,
		now:          time.Now,
	}
}

// ForDay returns up to 20 bookings for the given calendar day ordered by time
// ascending. A zero day means today. The filter "all" (or empty) applies no
// status predicate; any other value restricts to exactly that status, and an
// unrecognized value simply matches nothing.
func (f *ScheduleFilter) ForDay(ctx context.Context, day time.Time, statusFilter string) ([]ScheduleEntry, error) {
	if day.IsZero() {
		day = f.now()
	}
	start, end := dayBounds(day)

	status := statusFilter
	if status == FilterAll {
		status = ""
	}

	var (
		appts   []*model.Appointment
		walkIns []*model.WalkIn
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appts, err = f.appointments.ListScheduledBetween(gctx, start, end, status, scheduleLimit)
		if err != nil {
			return fmt.Errorf("failed to list scheduled appointments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		walkIns, err = f.walkIns.ListCreatedBetween(gctx, start, end, status, scheduleLimit)
		if err != nil {
			return fmt.Errorf("failed to list walk-ins: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	serviceIDs := make([]string, 0, len(appts)+len(walkIns))
	for _, a := range appts {
		serviceIDs = append(serviceIDs, a.ServiceRef().IDs()...)
	}
	for _, w := range walkIns {
		serviceIDs = append(serviceIDs, w.ServiceRef().IDs()...)
	}
	names, err := f.serviceNames(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]ScheduleEntry, 0, len(appts)+len(walkIns))
	for _, a := range appts {
		entries = append(entries, ScheduleEntry{
			ID:            a.ID,
			BookingType:   ActivityTypeAppointment,
			CustomerName:  a.CustomerName,
			PetName:       a.PetName,
			ServiceName:   ResolveServiceName(a.ServiceRef(), names),
			QueuePosition: a.QueuePosition,
			Notes:         a.Notes,
			Status:        a.Status,
			ScheduledAt:   a.ScheduledAt,
		})
	}
	for _, w := range walkIns {
		entries = append(entries, ScheduleEntry{
			ID:            w.ID,
			BookingType:   ActivityTypeWalkIn,
			CustomerName:  w.CustomerName,
			PetName:       w.PetName,
			ServiceName:   ResolveServiceName(w.ServiceRef(), names),
			QueuePosition: w.QueuePosition,
			Notes:         w.Notes,
			Status:        w.Status,
			ScheduledAt:   w.CreatedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ScheduledAt.Before(entries[j].ScheduledAt)
	})
	if len(entries) > scheduleLimit {
		entries = entries[:scheduleLimit]
	}

	return entries, nil
}

func (f *ScheduleFilter) serviceNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	names, err := f.services.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service names: %w", err)
	}
	return names, nil
}
