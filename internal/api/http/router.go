package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/visualpath/visualpath-api/internal/api/http/handlers"
	"github.com/visualpath/visualpath-api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Bookings       *handlers.BookingHandler
	Contacts       *handlers.ContactHandler
	Internships    *handlers.InternshipHandler
	Partnerships   *handlers.PartnershipHandler
	Mentorships    *handlers.MentorshipHandler
	SocialSupport  *handlers.SocialSupportHandler
	Enrollments    *handlers.EnrollmentHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes. Submission POSTs are public behind the
// rate limiter; management endpoints require an authenticated admin.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	admin := cfg.AuthMiddleware.RequireAdmin
	limited := cfg.RateLimiter
	if limited == nil {
		limited = func(c *fiber.Ctx) error { return c.Next() }
	}

	bookings := app.Group("/book-shoot")
	bookings.Post("/", limited, cfg.Bookings.Create)
	bookings.Get("/", admin, cfg.Bookings.List)
	bookings.Get("/stats", admin, cfg.Bookings.Stats)
	bookings.Get("/my-bookings/:email", cfg.Bookings.ListByEmail)
	bookings.Get("/status/:status", admin, cfg.Bookings.ListByStatus)
	bookings.Get("/:id", cfg.Bookings.Get)
	bookings.Patch("/:id", admin, cfg.Bookings.Update)
	bookings.Delete("/:id", admin, cfg.Bookings.Delete)

	contacts := app.Group("/contact")
	contacts.Post("/", limited, cfg.Contacts.Create)
	contacts.Get("/", admin, cfg.Contacts.List)
	contacts.Get("/stats", admin, cfg.Contacts.Stats)
	contacts.Get("/my-messages/:email", cfg.Contacts.ListByEmail)
	contacts.Get("/:id", admin, cfg.Contacts.Get)
	contacts.Patch("/:id/read", admin, cfg.Contacts.MarkRead)
	contacts.Patch("/:id", admin, cfg.Contacts.Update)
	contacts.Delete("/:id", admin, cfg.Contacts.Delete)

	internships := app.Group("/internships")
	internships.Post("/", limited, cfg.Internships.Create)
	internships.Get("/", admin, cfg.Internships.List)
	internships.Get("/stats", admin, cfg.Internships.Stats)
	internships.Get("/my-applications/:email", cfg.Internships.ListByEmail)
	internships.Get("/status/:status", admin, cfg.Internships.ListByStatus)
	internships.Get("/:id", admin, cfg.Internships.Get)
	internships.Patch("/:id", admin, cfg.Internships.Update)
	internships.Delete("/:id", admin, cfg.Internships.Delete)

	partnerships := app.Group("/partnerships")
	partnerships.Post("/", limited, cfg.Partnerships.Create)
	partnerships.Get("/", admin, cfg.Partnerships.List)
	partnerships.Get("/my-requests/:email", cfg.Partnerships.ListByEmail)
	partnerships.Get("/:id", admin, cfg.Partnerships.Get)
	partnerships.Patch("/:id", admin, cfg.Partnerships.Update)
	partnerships.Delete("/:id", admin, cfg.Partnerships.Delete)

	mentorships := app.Group("/get-involved")
	mentorships.Post("/", limited, cfg.Mentorships.Create)
	mentorships.Get("/", admin, cfg.Mentorships.List)
	mentorships.Get("/:id", cfg.Mentorships.Get)
	mentorships.Patch("/:id", admin, cfg.Mentorships.Update)
	mentorships.Delete("/:id", admin, cfg.Mentorships.Delete)

	socialSupport := app.Group("/social-media-support")
	socialSupport.Post("/", limited, cfg.SocialSupport.Create)
	socialSupport.Get("/", admin, cfg.SocialSupport.List)
	socialSupport.Get("/my-requests/:email", cfg.SocialSupport.ListByEmail)
	socialSupport.Get("/:id", admin, cfg.SocialSupport.Get)
	socialSupport.Patch("/:id", admin, cfg.SocialSupport.Update)
	socialSupport.Delete("/:id", admin, cfg.SocialSupport.Delete)

	enrollments := app.Group("/start-coding")
	enrollments.Post("/", limited, cfg.Enrollments.Create)
	enrollments.Get("/", admin, cfg.Enrollments.List)
	enrollments.Get("/stats", admin, cfg.Enrollments.Stats)
	enrollments.Get("/my-enrollments/:email", cfg.Enrollments.ListByEmail)
	enrollments.Get("/status/:status", admin, cfg.Enrollments.ListByStatus)
	enrollments.Get("/:id", admin, cfg.Enrollments.Get)
	enrollments.Patch("/:id", admin, cfg.Enrollments.Update)
	enrollments.Delete("/:id", admin, cfg.Enrollments.Delete)
}
