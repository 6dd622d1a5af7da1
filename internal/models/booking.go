package models

import "time"

// Booking status constants. The lifecycle is one-way: confirmed bookings
// may transition to cancelled, and cancelled is terminal.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a user's reservation of Passengers seats on a Transport.
// Bookings are never deleted; cancellation only flips Status.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TransportID string    `json:"transportId"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Passengers  int       `json:"passengers"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
