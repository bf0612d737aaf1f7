package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// Controllers bundles the route handlers the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Event      *controllers.EventController
	Moderation *controllers.ModerationController
	Attendance *controllers.AttendanceController
	Report     *controllers.ReportController
	Directory  *controllers.DirectoryController
}

// NewRouter initializes the HTTP router with all application routes.
// Routes registered through authed require a valid Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /dashboard", authed(c.Auth.Dashboard))

	// Events. The pending route is registered before the {eventID} wildcard
	// only for readability; ServeMux prefers the literal segment either way.
	mux.HandleFunc("GET /events", authed(c.Event.ListAllEvents))
	mux.HandleFunc("POST /events", authed(c.Event.CreateEvent))
	mux.HandleFunc("GET /events/mine", authed(c.Event.ListMyEvents))
	mux.HandleFunc("GET /events/pending", authed(c.Moderation.PendingEvents))
	mux.HandleFunc("GET /events/{eventID}", authed(c.Event.GetEvent))
	mux.HandleFunc("PATCH /events/{eventID}", authed(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", authed(c.Event.DeleteEvent))

	// Moderation
	mux.HandleFunc("POST /events/{eventID}/approve", authed(c.Moderation.ApproveEvent))
	mux.HandleFunc("POST /events/{eventID}/deny", authed(c.Moderation.DenyEvent))

	// Attendance
	mux.HandleFunc("POST /events/{eventID}/attend", authed(c.Attendance.Attend))
	mux.HandleFunc("POST /events/{eventID}/prepay", authed(c.Attendance.Prepay))

	// Reports
	mux.HandleFunc("GET /reports/summary", authed(c.Report.Summary))
	mux.HandleFunc("POST /reports/summary", authed(c.Report.Summary))

	// Directory
	mux.HandleFunc("GET /locations", c.Directory.ListLocations)
	mux.HandleFunc("GET /locations/{locationID}", c.Directory.GetLocation)
	mux.HandleFunc("GET /categories", c.Directory.ListCategories)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
