package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/repository"
)

const (
	activityWindow   = 7 * 24 * time.Hour
	perSourceLimit   = 10
	activityFeedSize = 15
)

// ActivityFeedMerger builds the recent-activity feed from three heterogeneous
// sources: appointment creations, walk-in creations and completed payments.
type ActivityFeedMerger struct {
	appointments repository.AppointmentRepository
	walkIns      repository.WalkInRepository
	payments     repository.PaymentRepository
	now          func() time.Time
}

func NewActivityFeedMerger(
	appointments repository.AppointmentRepository,
	walkIns repository.WalkInRepository,
	payments repository.PaymentRepository,
) *ActivityFeedMerger {
	return &ActivityFeedMerger{
		appointments: appointments,
		walkIns:      walkIns,
		payments:     payments,
		now:          time.Now,
	}
}

// RecentActivity gathers up to 10 events per source from the last seven days,
// merges them most recent first and truncates the feed to 15 entries.
func (m *ActivityFeedMerger) RecentActivity(ctx context.Context) ([]ActivityEvent, error) {
	since := m.now().Add(-activityWindow)

	var (
		appts    []*model.Appointment
		walkIns  []*model.WalkIn
		payments []*model.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appts, err = m.appointments.ListCreatedSince(gctx, since, perSourceLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent appointments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		walkIns, err = m.walkIns.ListCreatedSince(gctx, since, perSourceLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent walk-ins: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		payments, err = m.payments.ListCompletedSince(gctx, since, perSourceLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent payments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	events := make([]ActivityEvent, 0, len(appts)+len(walkIns)+len(payments))
	for _, a := range appts {
		events = append(events, ActivityEvent{
			ID:          a.ID,
			Type:        ActivityTypeAppointment,
			Description: fmt.Sprintf("New appointment booked by %s for %s", a.CustomerName, a.PetName),
			Timestamp:   a.CreatedAt,
		})
	}
	for _, w := range walkIns {
		events = append(events, ActivityEvent{
			ID:          w.ID,
			Type:        ActivityTypeWalkIn,
			Description: fmt.Sprintf("Walk-in booking for %s with %s", w.CustomerName, w.PetName),
			Timestamp:   w.CreatedAt,
		})
	}
	for _, p := range payments {
		events = append(events, ActivityEvent{
			ID:          p.ID,
			Type:        ActivityTypePayment,
			Description: fmt.Sprintf("Payment received from %s - %s", p.CustomerName, FormatMoney(decimal.NewFromFloat(p.Amount))),
			Timestamp:   p.PaidAt,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if len(events) > activityFeedSize {
		events = events[:activityFeedSize]
	}

	// Identifiers compose event type, source key and feed position, so they
	// are unique within one response without relying on the wall clock.
	for i := range events {
		events[i].ID = fmt.Sprintf("%s-%s-%d", events[i].Type, events[i].ID, i)
	}

	return events, nil
}
