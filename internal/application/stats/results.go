package stats

import "time"

// Activity event types surfaced in the recent-activity feed.
const (
	ActivityTypeAppointment = "appointment"
	ActivityTypeWalkIn      = "walk_in"
	ActivityTypePayment     = "payment"
)

// CustomerStats is the per-customer dashboard snapshot. It is recomputed
// fresh on every request and never cached.
type CustomerStats struct {
	PetCount                  int              `json:"pet_count"`
	AppointmentCount          int              `json:"appointment_count"`
	WalkInCount               int              `json:"walk_in_count"`
	PendingWalkInsCount       int              `json:"pending_walk_ins_count"`
	UpcomingAppointmentsCount int              `json:"upcoming_appointments_count"`
	TotalSpent                string           `json:"total_spent"`
	RecentAppointments        []BookingSummary `json:"recent_appointments"`
	RecentWalkIns             []BookingSummary `json:"recent_walk_ins"`
	UserPets                  []PetSummary     `json:"user_pets"`
}

// EmptyCustomerStats is the single well-defined zero state for a customer
// with no data: counts at zero, "0.00" spend, empty lists rather than nulls.
func EmptyCustomerStats() *CustomerStats {
	return &CustomerStats{
		TotalSpent:         "0.00",
		RecentAppointments: []BookingSummary{},
		RecentWalkIns:      []BookingSummary{},
		UserPets:           []PetSummary{},
	}
}

// BookingSummary is one entry in a customer's recent booking history.
type BookingSummary struct {
	ID          string          `json:"id"`
	PetName     string          `json:"pet_name"`
	ServiceName string          `json:"service_name"`
	Status      string          `json:"status"`
	Total       float64         `json:"total"`
	ScheduledAt *time.Time      `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Session     *SessionSummary `json:"session,omitempty"`
}

// SessionSummary carries the timing of a booking's execution record.
type SessionSummary struct {
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Status          string     `json:"status"`
}

// PetSummary is one of the customer's pets with its last-groomed date.
type PetSummary struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	LastGroomingDate *time.Time `json:"last_grooming_date"`
	CreatedAt        time.Time  `json:"created_at"`
}

// OperationalStats is the staff/owner dashboard snapshot: today's volume and
// revenue against yesterday's, expressed as whole-number percentage trends.
type OperationalStats struct {
	TodayAppointments   int    `json:"todayAppointments"`
	TodayWalkIns        int    `json:"todayWalkIns"`
	PendingAppointments int    `json:"pendingAppointments"`
	TodayRevenue        string `json:"todayRevenue"`
	AppointmentsTrend   int    `json:"appointmentsTrend"`
	WalkInsTrend        int    `json:"walkInsTrend"`
	RevenueTrend        int    `json:"revenueTrend"`
}

// ScheduleEntry is one booking on a day's schedule, either variant.
type ScheduleEntry struct {
	ID            string    `json:"id"`
	BookingType   string    `json:"booking_type"`
	CustomerName  string    `json:"customer_name"`
	PetName       string    `json:"pet_name"`
	ServiceName   string    `json:"service_name"`
	QueuePosition int       `json:"queue_position"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

// ActivityEvent is a normalized, displayable business occurrence drawn from
// one of the three heterogeneous source record types.
type ActivityEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
