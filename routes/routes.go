package routes

import (
	"os"
	"strings"

	"harshenterprise-backend/config"
	"harshenterprise-backend/controllers"
	"harshenterprise-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func allowedOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Visit routes
		visits := api.Group("/visits")
		{
			visits.POST("", controllers.CreateVisit)
			visits.GET("", controllers.GetVisits)
			visits.GET("/:id", controllers.GetVisit)
			visits.PUT("/:id", controllers.UpdateVisit)
			visits.DELETE("/:id", controllers.DeleteVisit)

			// Dashboard queries
			visits.GET("/today", controllers.GetTodayVisits)
			visits.GET("/today/count", controllers.GetTodayVisitCount)
			visits.GET("/today/:date", controllers.GetVisitsByDate)
			visits.GET("/upcoming/count", controllers.GetUpcomingVisitCount)
			visits.GET("/revenue/total", controllers.GetTotalRevenue)
			visits.GET("/date/:date", controllers.GetVisitsByDate)

			// Printable artifacts
			visits.GET("/report", controllers.GetVisitReport)
			visits.GET("/:id/invoice", controllers.GetVisitInvoice)
		}
	}

	return r
}
