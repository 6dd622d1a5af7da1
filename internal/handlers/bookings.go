package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
	"github.com/travelease/travelease-backend/pkg/utils"
)

type CreateBookingInput struct {
	TransportID string `json:"transportId" binding:"required"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers" binding:"required"`
}

// CreateBooking reserves seats on a transport for the authenticated
// user. The capacity check and the seat decrement happen on the copy
// read for this request; there is no lock, so two simultaneous bookings
// can both pass the check (a known limitation of the flat-file design).
func CreateBooking(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var input CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()

		var transports []models.Transport
		if err := s.ReadCollection(ctx, store.Transports, &transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		var bookings []models.Booking
		if err := s.ReadCollection(ctx, store.Bookings, &bookings); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		idx := -1
		for i := range transports {
			if transports[i].ID == input.TransportID {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(404, gin.H{"message": "Transport not found"})
			return
		}

		if transports[idx].AvailableSeats < input.Passengers {
			c.JSON(400, gin.H{"message": "Not enough seats available"})
			return
		}

		booking := models.Booking{
			ID:          utils.NewID(),
			UserID:      userID,
			TransportID: input.TransportID,
			Type:        input.Type,
			Date:        input.Date,
			Passengers:  input.Passengers,
			Status:      models.BookingStatusConfirmed,
			CreatedAt:   time.Now().UTC(),
		}

		transports[idx].AvailableSeats -= input.Passengers

		// Two independent writes; a crash between them leaves the seat
		// count and the booking record inconsistent.
		bookings = append(bookings, booking)
		if err := s.WriteCollection(ctx, store.Bookings, bookings); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		if err := s.WriteCollection(ctx, store.Transports, transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(201, booking)
	}
}

// CancelBooking flips a confirmed booking owned by the caller to
// cancelled and restores the seats on the referenced transport. The
// restore is a no-op when the transport has since been deleted.
func CancelBooking(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		userID := c.GetString("userId")

		ctx := c.Request.Context()

		var transports []models.Transport
		if err := s.ReadCollection(ctx, store.Transports, &transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		var bookings []models.Booking
		if err := s.ReadCollection(ctx, store.Bookings, &bookings); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		idx := -1
		for i := range bookings {
			if bookings[i].ID == id && bookings[i].UserID == userID {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(404, gin.H{"message": "Booking not found"})
			return
		}

		if bookings[idx].Status != models.BookingStatusConfirmed {
			c.JSON(400, gin.H{"message": "Cannot cancel this booking"})
			return
		}

		for i := range transports {
			if transports[i].ID == bookings[idx].TransportID {
				transports[i].AvailableSeats += bookings[idx].Passengers
				break
			}
		}

		bookings[idx].Status = models.BookingStatusCancelled

		if err := s.WriteCollection(ctx, store.Bookings, bookings); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		if err := s.WriteCollection(ctx, store.Transports, transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "Booking cancelled successfully"})
	}
}

// GetUserBookings lists the caller's bookings, any status, in storage
// order.
func GetUserBookings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")

		var bookings []models.Booking
		if err := s.ReadCollection(c.Request.Context(), store.Bookings, &bookings); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		userBookings := []models.Booking{}
		for i := range bookings {
			if bookings[i].UserID == userID {
				userBookings = append(userBookings, bookings[i])
			}
		}

		c.JSON(200, userBookings)
	}
}
