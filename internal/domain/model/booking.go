package model

import "time"

// Booking status values shared by both booking variants.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment status values carried on bookings.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// ServiceRef reconciles the two storage shapes a booking may use to
// reference its services: the legacy single service_id field and the
// current joined service_ids set. Either side may be empty, never both.
type ServiceRef struct {
	SingleID string
	ManyIDs  []string
}

// IDs returns every referenced service ID, legacy reference included.
func (r ServiceRef) IDs() []string {
	ids := make([]string, 0, len(r.ManyIDs)+1)
	if r.SingleID != "" {
		ids = append(ids, r.SingleID)
	}
	ids = append(ids, r.ManyIDs...)
	return ids
}

// Appointment is a pre-scheduled booking, keyed by its scheduled time.
type Appointment struct {
	ID            string    `bson:"_id" json:"id"`
	CustomerID    string    `bson:"customer_id" json:"customer_id"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	PetID         string    `bson:"pet_id" json:"pet_id"`
	PetName       string    `bson:"pet_name" json:"pet_name"`
	ServiceID     string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceIDs    []string  `bson:"service_ids,omitempty" json:"service_ids,omitempty"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"`
	Total         float64   `bson:"total" json:"total"`
	ScheduledAt   time.Time `bson:"scheduled_at" json:"scheduled_at"`
	ActualDate    time.Time `bson:"actual_date,omitempty" json:"actual_date,omitempty"`
	QueuePosition int       `bson:"queue_position,omitempty" json:"queue_position,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// ServiceRef returns the appointment's service references as a tagged union.
func (a *Appointment) ServiceRef() ServiceRef {
	return ServiceRef{SingleID: a.ServiceID, ManyIDs: a.ServiceIDs}
}

// WalkIn is a same-day booking, keyed by its creation time.
type WalkIn struct {
	ID            string    `bson:"_id" json:"id"`
	CustomerID    string    `bson:"customer_id" json:"customer_id"`
	CustomerName  string    `bson:"customer_name" json:"customer_name"`
	PetID         string    `bson:"pet_id" json:"pet_id"`
	PetName       string    `bson:"pet_name" json:"pet_name"`
	ServiceID     string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceIDs    []string  `bson:"service_ids,omitempty" json:"service_ids,omitempty"`
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"`
	Total         float64   `bson:"total" json:"total"`
	QueuePosition int       `bson:"queue_position,omitempty" json:"queue_position,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// ServiceRef returns the walk-in's service references as a tagged union.
func (w *WalkIn) ServiceRef() ServiceRef {
	return ServiceRef{SingleID: w.ServiceID, ManyIDs: w.ServiceIDs}
}
