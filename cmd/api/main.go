package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/visualpath/visualpath-api/internal/api/http"
	"github.com/visualpath/visualpath-api/internal/api/http/handlers"
	"github.com/visualpath/visualpath-api/internal/auth"
	"github.com/visualpath/visualpath-api/internal/config"
	"github.com/visualpath/visualpath-api/internal/events"
	"github.com/visualpath/visualpath-api/internal/observability"
	"github.com/visualpath/visualpath-api/internal/persistence"
	"github.com/visualpath/visualpath-api/internal/repository"
	"github.com/visualpath/visualpath-api/internal/service"
	"github.com/visualpath/visualpath-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	internshipRepo := repository.NewInternshipRepository(pool)
	partnershipRepo := repository.NewPartnershipRepository(pool)
	mentorshipRepo := repository.NewMentorshipRepository(pool)
	socialSupportRepo := repository.NewSocialSupportRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, adminRepo)
	bookingService := service.NewBookingService(bookingRepo, dispatcher)
	contactService := service.NewContactService(contactRepo, dispatcher)
	internshipService := service.NewInternshipService(internshipRepo, dispatcher)
	partnershipService := service.NewPartnershipService(partnershipRepo, dispatcher)
	mentorshipService := service.NewMentorshipService(mentorshipRepo, dispatcher)
	socialSupportService := service.NewSocialSupportService(socialSupportRepo, dispatcher)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), adminRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Bookings:       handlers.NewBookingHandler(bookingService),
		Contacts:       handlers.NewContactHandler(contactService),
		Internships:    handlers.NewInternshipHandler(internshipService),
		Partnerships:   handlers.NewPartnershipHandler(partnershipService),
		Mentorships:    handlers.NewMentorshipHandler(mentorshipService),
		SocialSupport:  handlers.NewSocialSupportHandler(socialSupportService),
		Enrollments:    handlers.NewEnrollmentHandler(enrollmentService),
		AuthMiddleware: authMiddleware,
		RateLimiter:    httptransport.RateLimiter(cfg.RateLimit, redis, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
