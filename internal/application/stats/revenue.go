package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/repository"
)

// RevenueCalculator combines revenue from the two independent booking
// categories into one total.
type RevenueCalculator struct {
	appointments repository.AppointmentRepository
	walkIns      repository.WalkInRepository
}

func NewRevenueCalculator(appointments repository.AppointmentRepository, walkIns repository.WalkInRepository) *RevenueCalculator {
	return &RevenueCalculator{
		appointments: appointments,
		walkIns:      walkIns,
	}
}

// ForPeriod sums totals of completed, paid bookings across both categories
// within [from, to): appointments by scheduled date, walk-ins by creation date.
func (c *RevenueCalculator) ForPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var apptTotal, walkInTotal float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := c.appointments.SumCompletedPaidBetween(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to sum appointment revenue: %w", err)
		}
		apptTotal = total
		return nil
	})
	g.Go(func() error {
		total, err := c.walkIns.SumCompletedPaidBetween(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to sum walk-in revenue: %w", err)
		}
		walkInTotal = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromFloat(apptTotal).Add(decimal.NewFromFloat(walkInTotal)), nil
}

// TotalSpent folds a customer's lifetime spend from their bookings of both
// categories. Only completed bookings contribute; anything else adds nothing.
func TotalSpent(appointments []*model.Appointment, walkIns []*model.WalkIn) decimal.Decimal {
	total := decimal.Zero
	for _, a := range appointments {
		if a.Status == model.StatusCompleted {
			total = total.Add(decimal.NewFromFloat(a.Total))
		}
	}
	for _, w := range walkIns {
		if w.Status == model.StatusCompleted {
			total = total.Add(decimal.NewFromFloat(w.Total))
		}
	}
	return total
}

// FormatMoney renders a monetary total with exactly two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
