package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
)

// GetAllBookings returns every booking across all users, for
// operational oversight. Admin only.
func GetAllBookings(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking
		if err := s.ReadCollection(c.Request.Context(), store.Bookings, &bookings); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		if bookings == nil {
			bookings = []models.Booking{}
		}
		c.JSON(200, bookings)
	}
}
