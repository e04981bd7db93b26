package stats

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/repository"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/errors"
)

const recentLimit = 5

// CustomerStatsAggregator builds the customer dashboard snapshot. Every call
// issues its battery of independent queries concurrently and fails as a whole
// if any single query fails.
type CustomerStatsAggregator struct {
	customers    repository.CustomerRepository
	pets         repository.PetRepository
	appointments repository.AppointmentRepository
	walkIns      repository.WalkInRepository
	sessions     repository.SessionRepository
	services     repository.ServiceRepository
	now          func() time.Time
}

func NewCustomerStatsAggregator(
	customers repository.CustomerRepository,
	pets repository.PetRepository,
	appointments repository.AppointmentRepository,
	walkIns repository.WalkInRepository,
	sessions repository.SessionRepository,
	services repository.ServiceRepository,
) *CustomerStatsAggregator {
	return &CustomerStatsAggregator{
		customers:    customers,
		pets:         pets,
		appointments: appointments,
		walkIns:      walkIns,
		sessions:     sessions,
		services:     services,
		now:          time.Now,
	}
}

// GetCustomerStats computes the snapshot for one customer. A missing customer
// record is NOT_FOUND; a customer with no data yields the empty snapshot.
func (a *CustomerStatsAggregator) GetCustomerStats(ctx context.Context, customerID string) (*CustomerStats, error) {
	if customerID == "" {
		return nil, errors.NewValidationError("customer id is required")
	}

	if _, err := a.customers.GetByID(ctx, customerID); err != nil {
		var nf *repository.NotFoundError
		if stderrors.As(err, &nf) {
			return nil, errors.NewNotFoundError("customer")
		}
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}

	snapshot := EmptyCustomerStats()
	todayStart, _ := dayBounds(a.now())

	var (
		recentAppts      []*model.Appointment
		recentWalkIns    []*model.WalkIn
		completedAppts   []*model.Appointment
		completedWalkIns []*model.WalkIn
		pets             []*model.Pet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := a.pets.CountByCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to count pets: %w", err)
		}
		snapshot.PetCount = n
		return nil
	})
	g.Go(func() error {
		n, err := a.appointments.CountByCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to count appointments: %w", err)
		}
		snapshot.AppointmentCount = n
		return nil
	})
	g.Go(func() error {
		n, err := a.walkIns.CountByCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to count walk-ins: %w", err)
		}
		snapshot.WalkInCount = n
		return nil
	})
	g.Go(func() error {
		n, err := a.walkIns.CountPendingByCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to count pending walk-ins: %w", err)
		}
		snapshot.PendingWalkInsCount = n
		return nil
	})
	g.Go(func() error {
		n, err := a.appointments.CountUpcomingByCustomer(gctx, customerID, todayStart)
		if err != nil {
			return fmt.Errorf("failed to count upcoming appointments: %w", err)
		}
		snapshot.UpcomingAppointmentsCount = n
		return nil
	})
	g.Go(func() error {
		var err error
		recentAppts, err = a.appointments.ListRecentByCustomer(gctx, customerID, recentLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent appointments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recentWalkIns, err = a.walkIns.ListRecentByCustomer(gctx, customerID, recentLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent walk-ins: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		completedAppts, err = a.appointments.ListCompletedByCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to list completed appointments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		completedWalkIns, err = a.walkIns.ListCompletedByCustomer(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to list completed walk-ins: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pets, err = a.pets.ListRecentByCustomer(gctx, customerID, recentLimit)
		if err != nil {
			return fmt.Errorf("failed to list pets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot.TotalSpent = FormatMoney(TotalSpent(completedAppts, completedWalkIns))

	sessions, err := a.sessionsForRecent(ctx, recentAppts, recentWalkIns)
	if err != nil {
		return nil, err
	}
	names, err := a.serviceNamesForRecent(ctx, recentAppts, recentWalkIns)
	if err != nil {
		return nil, err
	}

	for _, appt := range recentAppts {
		scheduledAt := appt.ScheduledAt
		snapshot.RecentAppointments = append(snapshot.RecentAppointments, BookingSummary{
			ID:          appt.ID,
			PetName:     appt.PetName,
			ServiceName: ResolveServiceName(appt.ServiceRef(), names),
			Status:      appt.Status,
			Total:       appt.Total,
			ScheduledAt: &scheduledAt,
			CreatedAt:   appt.CreatedAt,
			Session:     sessions[appt.ID],
		})
	}
	for _, walkIn := range recentWalkIns {
		snapshot.RecentWalkIns = append(snapshot.RecentWalkIns, BookingSummary{
			ID:          walkIn.ID,
			PetName:     walkIn.PetName,
			ServiceName: ResolveServiceName(walkIn.ServiceRef(), names),
			Status:      walkIn.Status,
			Total:       walkIn.Total,
			CreatedAt:   walkIn.CreatedAt,
			Session:     sessions[walkIn.ID],
		})
	}

	snapshot.UserPets = petSummaries(pets, completedAppts, completedWalkIns)

	return snapshot, nil
}

// sessionsForRecent loads the execution records attached to the recent
// bookings and keys them by booking ID.
func (a *CustomerStatsAggregator) sessionsForRecent(ctx context.Context, appts []*model.Appointment, walkIns []*model.WalkIn) (map[string]*SessionSummary, error) {
	bookingIDs := make([]string, 0, len(appts)+len(walkIns))
	for _, appt := range appts {
		bookingIDs = append(bookingIDs, appt.ID)
	}
	for _, walkIn := range walkIns {
		bookingIDs = append(bookingIDs, walkIn.ID)
	}
	if len(bookingIDs) == 0 {
		return map[string]*SessionSummary{}, nil
	}

	sessions, err := a.sessions.ListByBookingIDs(ctx, bookingIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	byBooking := make(map[string]*SessionSummary, len(sessions))
	for _, s := range sessions {
		summary := &SessionSummary{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			Status:          s.Status,
		}
		if !s.EndTime.IsZero() {
			endTime := s.EndTime
			summary.EndTime = &endTime
		}
		byBooking[s.BookingID] = summary
	}
	return byBooking, nil
}

func (a *CustomerStatsAggregator) serviceNamesForRecent(ctx context.Context, appts []*model.Appointment, walkIns []*model.WalkIn) (map[string]string, error) {
	ids := make([]string, 0, len(appts)+len(walkIns))
	for _, appt := range appts {
		ids = append(ids, appt.ServiceRef().IDs()...)
	}
	for _, walkIn := range walkIns {
		ids = append(ids, walkIn.ServiceRef().IDs()...)
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	names, err := a.services.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service names: %w", err)
	}
	return names, nil
}

// petSummaries annotates each pet with its last grooming date: the later of
// the latest actual date among its completed appointments and the latest
// creation time among its completed walk-ins, nil when neither exists.
func petSummaries(pets []*model.Pet, completedAppts []*model.Appointment, completedWalkIns []*model.WalkIn) []PetSummary {
	lastGroomed := make(map[string]time.Time, len(pets))
	for _, appt := range completedAppts {
		groomedAt := appt.ActualDate
		if groomedAt.IsZero() {
			groomedAt = appt.ScheduledAt
		}
		if groomedAt.After(lastGroomed[appt.PetID]) {
			lastGroomed[appt.PetID] = groomedAt
		}
	}
	for _, walkIn := range completedWalkIns {
		if walkIn.CreatedAt.After(lastGroomed[walkIn.PetID]) {
			lastGroomed[walkIn.PetID] = walkIn.CreatedAt
		}
	}

	summaries := make([]PetSummary, 0, len(pets))
	for _, pet := range pets {
		summary := PetSummary{
			ID:        pet.ID,
			Name:      pet.Name,
			CreatedAt: pet.CreatedAt,
		}
		if groomedAt, ok := lastGroomed[pet.ID]; ok {
			summary.LastGroomingDate = &groomedAt
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
