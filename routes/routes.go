package routes

import (
	"quiz_app_backend/handlers"
	"quiz_app_backend/middleware"
	"quiz_app_backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Options struct {
	// Development exposes panic detail in 500 responses.
	Development bool
	// CORSOrigins restricts cross-origin callers; empty allows all.
	CORSOrigins []string
}

// NewRouter builds the engine with middleware and all routes.
func NewRouter(s *store.Store, opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestLogger(), middleware.Recovery(opts.Development))

	config := cors.DefaultConfig()
	if len(opts.CORSOrigins) > 0 {
		config.AllowOrigins = opts.CORSOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
	}
	config.AllowMethods = []string{
		"GET",
		"POST",
	}
	r.Use(cors.New(config))

	SetupRoutes(r, s)

	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())
	return r
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, s *store.Store) {
	healthHandler := handlers.NewHealthHandler(s)
	courseHandler := handlers.NewCourseHandler(s)
	lessonHandler := handlers.NewLessonHandler(s)
	evaluationHandler := handlers.NewEvaluationHandler(s)

	r.GET("/health", healthHandler.HealthCheck)

	api := r.Group("/api")
	{
		// Course routes
		api.GET("/courses", courseHandler.GetCourses)
		api.GET("/courses/:courseId/lessons", courseHandler.GetCourseLessons)

		// Lesson routes
		api.GET("/lessons/:lessonId/questions", lessonHandler.GetLessonQuestions)

		// Evaluation route
		api.POST("/evaluate", evaluationHandler.Evaluate)
	}
}
