package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"cisoevents/internal/delivery/http/controllers"
	"cisoevents/internal/delivery/http/middleware"
	"cisoevents/internal/domain"
)

// RouterDeps bundles everything the router needs to wire its routes.
type RouterDeps struct {
	Logger        *slog.Logger
	TokenVerifier domain.TokenVerifier
	Sessions      domain.AuthService

	Auth          *controllers.AuthController
	Events        *controllers.EventController
	Catalog       *controllers.CatalogController
	Notifications *controllers.NotificationController
	Calendar      *controllers.CalendarController
	Newsletter    *controllers.NewsletterController
	Dashboard     *controllers.DashboardController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	guard := middleware.RequireSession(d.TokenVerifier, d.Sessions, d.Logger)

	// Public catalog
	mux.HandleFunc("GET /events", d.Events.ListEvents)
	mux.HandleFunc("GET /speakers", d.Catalog.ListSpeakers)
	mux.HandleFunc("GET /agenda", d.Catalog.ListAgenda)
	mux.HandleFunc("GET /podcasts", d.Catalog.ListPodcasts)
	mux.HandleFunc("GET /sponsors", d.Catalog.ListSponsors)
	mux.HandleFunc("GET /stats", d.Catalog.ListStats)

	// Calendar
	mux.HandleFunc("GET /calendar/export.ics", d.Calendar.DownloadICS)
	mux.HandleFunc("GET /calendar/links", d.Calendar.CalendarLinks)

	// Newsletter
	mux.HandleFunc("POST /newsletter/subscribe", d.Newsletter.Subscribe)

	// Auth
	mux.HandleFunc("POST /admin/login", d.Auth.Login)
	mux.HandleFunc("POST /admin/logout", guard(d.Auth.Logout))
	mux.HandleFunc("GET /admin/session", guard(d.Auth.Session))

	// Admin console
	mux.HandleFunc("GET /admin/dashboard", guard(d.Dashboard.Dashboard))
	mux.HandleFunc("GET /admin/events", guard(d.Events.ListEvents))
	mux.HandleFunc("POST /admin/events", guard(d.Events.CreateEvent))
	mux.HandleFunc("GET /admin/events/{eventID}", guard(d.Events.GetEvent))
	mux.HandleFunc("PATCH /admin/events/{eventID}", guard(d.Events.UpdateEvent))
	mux.HandleFunc("DELETE /admin/events/{eventID}", guard(d.Events.DeleteEvent))
	mux.HandleFunc("GET /admin/speakers", guard(d.Catalog.ListSpeakers))
	mux.HandleFunc("GET /admin/agenda", guard(d.Catalog.ListAgenda))
	mux.HandleFunc("GET /admin/podcasts", guard(d.Catalog.ListPodcasts))
	mux.HandleFunc("GET /admin/sponsors", guard(d.Catalog.ListSponsors))
	mux.HandleFunc("GET /admin/notifications", guard(d.Notifications.ListNotifications))
	mux.HandleFunc("DELETE /admin/notifications/{id}", guard(d.Notifications.DismissNotification))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Unknown paths go back to the landing page.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Redirect(w, r, "/", http.StatusPermanentRedirect)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"service":"cisoevents","docs":"/swagger/index.html"}`))
	})

	return mux
}
