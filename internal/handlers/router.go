package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/travelease/travelease-backend/internal/middleware"
	"github.com/travelease/travelease-backend/internal/store"
)

// NewRouter wires every route onto a gin engine. Shared between main
// and the tests so both exercise the same middleware chain.
func NewRouter(s *store.Store, jwtSecret string) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", Register(s, jwtSecret))
			auth.POST("/login", Login(s, jwtSecret))
		}

		// Catalog browsing is open to anonymous clients.
		api.GET("/transport", GetTransports(s))

		admin := api.Group("/admin")
		admin.Use(middleware.Auth(s, jwtSecret), middleware.AdminOnly())
		{
			admin.POST("/transport", AddTransport(s))
			admin.PUT("/transport/:id", UpdateTransport(s))
			admin.DELETE("/transport/:id", DeleteTransport(s))
			admin.GET("/bookings", GetAllBookings(s))
		}

		bookings := api.Group("/bookings")
		bookings.Use(middleware.Auth(s, jwtSecret))
		{
			bookings.POST("", CreateBooking(s))
			bookings.GET("", GetUserBookings(s))
			// Clients cancel with either verb.
			bookings.PUT("/:id", CancelBooking(s))
			bookings.DELETE("/:id", CancelBooking(s))
		}
	}

	return r
}
