package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/repository"
)

// OperationalStatsAggregator builds the staff/owner dashboard snapshot:
// today's booking volume and revenue compared against yesterday's.
type OperationalStatsAggregator struct {
	appointments repository.AppointmentRepository
	walkIns      repository.WalkInRepository
	revenue      *RevenueCalculator
	now          func() time.Time
}

func NewOperationalStatsAggregator(
	appointments repository.AppointmentRepository,
	walkIns repository.WalkInRepository,
	revenue *RevenueCalculator,
) *OperationalStatsAggregator {
	return &OperationalStatsAggregator{
		appointments: appointments,
		walkIns:      walkIns,
		revenue:      revenue,
		now:          time.Now,
	}
}

// GetOperationalStats computes the operational snapshot relative to the
// server-local calendar date at call time. Appointments are keyed by
// scheduled date, walk-ins by creation date; cancelled bookings never count.
func (a *OperationalStatsAggregator) GetOperationalStats(ctx context.Context) (*OperationalStats, error) {
	todayStart, tomorrowStart := dayBounds(a.now())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var (
		todayAppts, yesterdayAppts     int
		todayWalkIns, yesterdayWalkIns int
		pendingAppts                   int
		todayRevenue, yesterdayRevenue decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := a.appointments.CountScheduledBetween(gctx, todayStart, tomorrowStart)
		if err != nil {
			return fmt.Errorf("failed to count today's appointments: %w", err)
		}
		todayAppts = n
		return nil
	})
	g.Go(func() error {
		n, err := a.appointments.CountScheduledBetween(gctx, yesterdayStart, todayStart)
		if err != nil {
			return fmt.Errorf("failed to count yesterday's appointments: %w", err)
		}
		yesterdayAppts = n
		return nil
	})
	g.Go(func() error {
		n, err := a.walkIns.CountCreatedBetween(gctx, todayStart, tomorrowStart)
		if err != nil {
			return fmt.Errorf("failed to count today's walk-ins: %w", err)
		}
		todayWalkIns = n
		return nil
	})
	g.Go(func() error {
		n, err := a.walkIns.CountCreatedBetween(gctx, yesterdayStart, todayStart)
		if err != nil {
			return fmt.Errorf("failed to count yesterday's walk-ins: %w", err)
		}
		yesterdayWalkIns = n
		return nil
	})
	g.Go(func() error {
		n, err := a.appointments.CountPending(gctx)
		if err != nil {
			return fmt.Errorf("failed to count pending appointments: %w", err)
		}
		pendingAppts = n
		return nil
	})
	g.Go(func() error {
		total, err := a.revenue.ForPeriod(gctx, todayStart, tomorrowStart)
		if err != nil {
			return fmt.Errorf("failed to compute today's revenue: %w", err)
		}
		todayRevenue = total
		return nil
	})
	g.Go(func() error {
		total, err := a.revenue.ForPeriod(gctx, yesterdayStart, todayStart)
		if err != nil {
			return fmt.Errorf("failed to compute yesterday's revenue: %w", err)
		}
		yesterdayRevenue = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	todayRevenueF, _ := todayRevenue.Float64()
	yesterdayRevenueF, _ := yesterdayRevenue.Float64()

	return &OperationalStats{
		TodayAppointments:   todayAppts,
		TodayWalkIns:        todayWalkIns,
		PendingAppointments: pendingAppts,
		TodayRevenue:        FormatMoney(todayRevenue),
		AppointmentsTrend:   Trend(float64(todayAppts), float64(yesterdayAppts)),
		WalkInsTrend:        Trend(float64(todayWalkIns), float64(yesterdayWalkIns)),
		RevenueTrend:        Trend(todayRevenueF, yesterdayRevenueF),
	}, nil
}
