package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with middleware and every /api/v1 route.
func NewRouter(jobs *JobHandler, career *CareerHandler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger())

	config := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = corsOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader, "Content-Disposition"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/dashboard", jobs.Dashboard)
		api.GET("/about", jobs.About)

		api.GET("/jobs", jobs.ListJobs)
		api.GET("/jobs/autocomplete", jobs.AutocompleteTitles)
		api.GET("/jobs/autocomplete/location", jobs.AutocompleteLocations)
		api.GET("/jobs/:id", jobs.GetJob)

		api.GET("/career-advice", career.CareerAdvice)
		api.POST("/cv-generator", career.GenerateCV)
		api.POST("/cv-job-matcher", career.MatchCV)
	}
	return r
}
