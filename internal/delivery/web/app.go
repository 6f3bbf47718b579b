// Package web is the second HTTP surface: the same note contract served
// by Fiber, the way the colocated site API exposes it. All business
// behavior lives in the shared usecases; this package only translates.
package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"go-jobseeker-backend/config"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/auth"
	"go-jobseeker-backend/pkg/logger"
)

type AppDeps struct {
	NoteUC      domain.NoteUsecase
	JobseekerUC domain.JobseekerUsecase
	Resolver    auth.Resolver
	Config      *config.Config
}

// envelope mirrors the api surface's response shape so clients cannot
// tell the two surfaces apart.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func NewApp(deps AppDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "jobseeker-web",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.FrontendURL,
		AllowCredentials: true,
		AllowHeaders:     "Content-Type, Authorization, Accept, Origin, X-Requested-With",
		AllowMethods:     "POST, GET, OPTIONS, PUT, DELETE",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return success(c, fiber.StatusOK, "System operational", nil)
	})

	h := &handlers{
		noteUC:      deps.NoteUC,
		jobseekerUC: deps.JobseekerUC,
		writerRoles: deps.Config.NoteWriterRoles,
	}

	api := app.Group("/api", authRequired(deps.Resolver))

	api.Get("/jobseekers", h.listJobseekers)
	api.Get("/jobseekers/:jobseekerId", h.getJobseeker)
	api.Get("/jobseekers/:jobseekerId/notes", h.listNotes)
	api.Post("/jobseekers/:jobseekerId/notes", h.requireWriter, h.createNote)
	api.Put("/jobseekers/:jobseekerId/notes/:noteId", h.requireWriter, h.updateNote)
	api.Delete("/jobseekers/:jobseekerId/notes/:noteId", h.requireWriter, h.deleteNote)

	return app
}

func success(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(envelope{Success: true, Message: message, Data: data})
}

func fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(envelope{Success: false, Error: message})
}

// failFrom maps usecase errors onto the envelope, logging anything that
// is not an expected AppError.
func failFrom(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return fail(c, appErr.Code, appErr.Message)
	}
	logger.Log.Error("unhandled error", "path", c.Path(), "error", err)
	return fail(c, fiber.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
}
