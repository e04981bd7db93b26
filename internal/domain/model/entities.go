package model

import "time"

// User roles recognized by the dashboard endpoints.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleOwner    UserRole = "owner"
)

// Customer is the identity record behind a customer dashboard request.
type Customer struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      UserRole  `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Pet belongs to exactly one customer.
type Pet struct {
	ID         string    `bson:"_id" json:"id"`
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	Name       string    `bson:"name" json:"name"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Service is a groomable offering referenced by bookings.
type Service struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Session is the optional execution record of a booking, zero-or-one per booking.
type Session struct {
	ID              string    `bson:"_id" json:"id"`
	BookingID       string    `bson:"booking_id" json:"booking_id"`
	StartTime       time.Time `bson:"start_time" json:"start_time"`
	EndTime         time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
	DurationMinutes int       `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	Status          string    `bson:"status" json:"status"`
}

// Payment statuses on payment records (distinct from booking payment_status).
const (
	PaymentCompleted = "completed"
	PaymentPending   = "pending"
	PaymentFailed    = "failed"
)

// Payment records money received against a booking.
type Payment struct {
	ID           string    `bson:"_id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"booking_id"`
	CustomerID   string    `bson:"customer_id" json:"customer_id"`
	CustomerName string    `bson:"customer_name" json:"customer_name"`
	Amount       float64   `bson:"amount" json:"amount"`
	Status       string    `bson:"status" json:"status"`
	PaidAt       time.Time `bson:"paid_at" json:"paid_at"`
}
