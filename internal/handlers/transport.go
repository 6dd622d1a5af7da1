package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/travelease/travelease-backend/internal/models"
	"github.com/travelease/travelease-backend/internal/store"
	"github.com/travelease/travelease-backend/pkg/utils"
)

type AddTransportInput struct {
	Type          string  `json:"type" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	From          string  `json:"from" binding:"required"`
	To            string  `json:"to" binding:"required"`
	DepartureTime string  `json:"departureTime" binding:"required"`
	ArrivalTime   string  `json:"arrivalTime" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	Seats         int     `json:"seats" binding:"required"`
}

// UpdateTransportInput carries a partial update; nil fields are left
// untouched. availableSeats is deliberately overridable here (manual
// inventory corrections), bypassing the booking flow.
type UpdateTransportInput struct {
	Type           *string  `json:"type"`
	Name           *string  `json:"name"`
	From           *string  `json:"from"`
	To             *string  `json:"to"`
	DepartureTime  *string  `json:"departureTime"`
	ArrivalTime    *string  `json:"arrivalTime"`
	Price          *float64 `json:"price"`
	Seats          *int     `json:"seats"`
	AvailableSeats *int     `json:"availableSeats"`
}

// GetTransports lists the whole catalog, sold-out records included.
// Anonymous access is allowed.
func GetTransports(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transports []models.Transport
		if err := s.ReadCollection(c.Request.Context(), store.Transports, &transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		if transports == nil {
			transports = []models.Transport{}
		}
		c.JSON(200, transports)
	}
}

// AddTransport creates a catalog record with availableSeats equal to the
// declared capacity. Admin only.
func AddTransport(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddTransportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}

		var transports []models.Transport
		if err := s.ReadCollection(c.Request.Context(), store.Transports, &transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		transport := models.Transport{
			ID:             utils.NewID(),
			Type:           input.Type,
			Name:           input.Name,
			From:           input.From,
			To:             input.To,
			DepartureTime:  input.DepartureTime,
			ArrivalTime:    input.ArrivalTime,
			Price:          input.Price,
			Seats:          input.Seats,
			AvailableSeats: input.Seats,
		}

		transports = append(transports, transport)
		if err := s.WriteCollection(c.Request.Context(), store.Transports, transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(201, transport)
	}
}

// UpdateTransport shallow-merges the provided fields over the stored
// record. Admin only.
func UpdateTransport(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateTransportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}

		var transports []models.Transport
		if err := s.ReadCollection(c.Request.Context(), store.Transports, &transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		idx := -1
		for i := range transports {
			if transports[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(404, gin.H{"message": "Transport not found"})
			return
		}

		t := &transports[idx]
		if input.Type != nil {
			t.Type = *input.Type
		}
		if input.Name != nil {
			t.Name = *input.Name
		}
		if input.From != nil {
			t.From = *input.From
		}
		if input.To != nil {
			t.To = *input.To
		}
		if input.DepartureTime != nil {
			t.DepartureTime = *input.DepartureTime
		}
		if input.ArrivalTime != nil {
			t.ArrivalTime = *input.ArrivalTime
		}
		if input.Price != nil {
			t.Price = *input.Price
		}
		if input.Seats != nil {
			t.Seats = *input.Seats
		}
		if input.AvailableSeats != nil {
			t.AvailableSeats = *input.AvailableSeats
		}

		if err := s.WriteCollection(c.Request.Context(), store.Transports, transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(200, transports[idx])
	}
}

// DeleteTransport removes a catalog record. Bookings that reference it
// are left in place and keep their dangling transportId. Admin only.
func DeleteTransport(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var transports []models.Transport
		if err := s.ReadCollection(c.Request.Context(), store.Transports, &transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		idx := -1
		for i := range transports {
			if transports[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			c.JSON(404, gin.H{"message": "Transport not found"})
			return
		}

		transports = append(transports[:idx], transports[idx+1:]...)
		if err := s.WriteCollection(c.Request.Context(), store.Transports, transports); err != nil {
			c.JSON(500, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"message": "Transport deleted successfully"})
	}
}
