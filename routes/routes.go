package routes

import (
	"net/http"
	"time"

	"voyago/handlers"
	"voyago/middleware"
	"voyago/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers user registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterUser)
		api.POST("/login", hb.User.LoginUser)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/all", hb.User.GetAllUsers)
		api.DELETE("/:id", hb.User.DeleteUser)
	}
}

// RegisterTransportRoutes registers transport inventory endpoints.
func RegisterTransportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/transport")
	{
		// Public read endpoints.
		api.GET("/all", hb.Transport.GetTransports)
		api.GET("/:id", hb.Transport.GetTransportByID)

		// Endpoints that modify inventory require authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/add", hb.Transport.AddTransport)
		protected.PUT("/:id", hb.Transport.UpdateTransport)
		protected.DELETE("/:id", hb.Transport.DeleteTransport)
	}
}

// RegisterProviderRoutes registers service provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/service")
	{
		api.GET("/", hb.Provider.GetAllProviders)
		api.GET("/:id", hb.Provider.GetProviderByID)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/add", hb.Provider.AddProvider)
		protected.PUT("/update/:id", hb.Provider.UpdateProvider)
		protected.DELETE("/delete/:id", hb.Provider.DeleteProvider)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires up CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterTransportRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}
