package main

import (
	"log"
	"net/http"

	"cisoevents/config"
	_ "cisoevents/docs"
	"cisoevents/internal/adapters/auth"
	"cisoevents/internal/adapters/email"
	httpdelivery "cisoevents/internal/delivery/http"
	"cisoevents/internal/delivery/http/controllers"
	"cisoevents/internal/delivery/http/middleware"
	"cisoevents/internal/repository/memory"
	"cisoevents/internal/services"
)

// @title CISOevents API
// @version 1.0
// @description Conference marketing site and admin console API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger()

	seed := memory.DefaultSeed()
	eventRepo := memory.NewEventRepository(seed.Events)
	catalogRepo := memory.NewCatalogRepository(seed)

	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)

	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, issuer, cfg.SessionExpiry)
	if err != nil {
		log.Fatalf("failed to create auth service: %v", err)
	}

	notifier := services.NewNotificationService(cfg.NotificationTTL)
	eventService := services.NewEventService(eventRepo, notifier)
	catalogService := services.NewCatalogService(catalogRepo)
	calendarService := services.NewCalendarService(services.FlagshipCalendarEvent)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}
	newsletterService := services.NewNewsletterService(mailer)

	mux := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:        logger,
		TokenVerifier: verifier,
		Sessions:      authService,

		Auth:          controllers.NewAuthController(logger, authService),
		Events:        controllers.NewEventController(logger, eventService),
		Catalog:       controllers.NewCatalogController(logger, catalogService),
		Notifications: controllers.NewNotificationController(logger, notifier),
		Calendar:      controllers.NewCalendarController(logger, calendarService),
		Newsletter:    controllers.NewNewsletterController(logger, newsletterService),
		Dashboard:     controllers.NewDashboardController(logger, eventService, catalogService),
	})

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "environment", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
