package routes

import (
	"net/http"

	"jobdeck/internal/api/handlers"
	"jobdeck/internal/api/middleware"
	"jobdeck/internal/auth"
	"jobdeck/internal/config"
	"jobdeck/internal/interchange"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// Dependencies bundles everything the route tree needs
type Dependencies struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *utils.RedisClient
	Verifier  auth.Verifier
	Jobs      *tracker.JobService
	Tasks     *tracker.TaskService
	Notes     *tracker.NoteService
	Contacts  *tracker.ContactService
	Documents *tracker.DocumentService
	Importer  *interchange.Importer
	Exporter  *interchange.Exporter
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	cfg := deps.Config

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Server.MaxBodySize))
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.DB, deps.Redis))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes, all owner-scoped
	rateLimiter := middleware.NewRateLimiter(cfg, deps.Redis)
	v1 := e.Group("/api/v1", middleware.RequireOwner(deps.Verifier), rateLimiter.Middleware())
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("", handlers.CreateJobHandler(deps.Jobs))
			jobs.GET("", handlers.ListJobsHandler(deps.Jobs))
			jobs.GET("/:id", handlers.GetJobHandler(deps.Jobs))
			jobs.PATCH("/:id", handlers.UpdateJobHandler(deps.Jobs))
			jobs.POST("/:id/move", handlers.MoveJobStatusHandler(deps.Jobs))
			jobs.DELETE("/:id", handlers.DeleteJobHandler(deps.Jobs))
			jobs.GET("/:id/events", handlers.JobEventsHandler(deps.Jobs))
			jobs.GET("/:id/tasks", handlers.ListJobTasksHandler(deps.Tasks))
			jobs.GET("/:id/notes", handlers.ListJobNotesHandler(deps.Notes))
			jobs.GET("/:id/contacts", handlers.ListJobContactsHandler(deps.Contacts))
			jobs.GET("/:id/documents", handlers.ListJobDocumentsHandler(deps.Documents))
			jobs.GET("/:id/export", handlers.ExportJobHandler(deps.Exporter))
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", handlers.CreateTaskHandler(deps.Tasks))
			tasks.GET("/upcoming", handlers.UpcomingTasksHandler(deps.Tasks))
			tasks.PATCH("/:id", handlers.UpdateTaskHandler(deps.Tasks))
			tasks.POST("/:id/toggle", handlers.ToggleTaskHandler(deps.Tasks))
			tasks.DELETE("/:id", handlers.DeleteTaskHandler(deps.Tasks))
		}

		notes := v1.Group("/notes")
		{
			notes.POST("", handlers.CreateNoteHandler(deps.Notes))
			notes.DELETE("/:id", handlers.DeleteNoteHandler(deps.Notes))
		}

		contacts := v1.Group("/contacts")
		{
			contacts.POST("", handlers.CreateContactHandler(deps.Contacts))
			contacts.DELETE("/:id", handlers.DeleteContactHandler(deps.Contacts))
		}

		documents := v1.Group("/documents")
		{
			documents.POST("", handlers.UploadDocumentHandler(deps.Documents))
			documents.GET("", handlers.ListDocumentsHandler(deps.Documents))
			documents.DELETE("/:id", handlers.DeleteDocumentHandler(deps.Documents))
		}

		v1.POST("/import/csv", handlers.ImportCSVHandler(deps.Importer))
		v1.POST("/import/backup", handlers.RestoreHandler(deps.Exporter))
		v1.GET("/export/csv", handlers.ExportCSVHandler(deps.Exporter))
		v1.GET("/export/backup", handlers.ExportBackupHandler(deps.Exporter))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Jobdeck",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
