package routes

import (
	"net/http"
	"strings"

	"github.com/shubhampawale7/Acharya-Beena/handlers"
	"github.com/shubhampawale7/Acharya-Beena/middleware"
	"github.com/shubhampawale7/Acharya-Beena/repository"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type Deps struct {
	Users        *handlers.UserHandler
	Appointments *handlers.AppointmentHandler
	Admin        *handlers.AdminHandler
	Contact      *handlers.ContactHandler
	Reports      *handlers.ReportHandler
	Astro        *handlers.AstroHandler

	UserRepo  repository.UserRepository
	JWTSecret string
	Limiter   *middleware.RateLimiter
}

func SetupRoutes(d *Deps) {
	register := func(path string, h http.HandlerFunc) {
		http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
	}
	protect := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Protect(d.UserRepo, d.JWTSecret, h)
	}
	adminOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return protect(middleware.AdminOnly(h))
	}

	// Public auth routes, rate limited per IP
	register("/api/users/register", middleware.RateLimit(d.Limiter, requireMethod(http.MethodPost, d.Users.Register)))
	register("/api/users/login", middleware.RateLimit(d.Limiter, requireMethod(http.MethodPost, d.Users.Login)))

	// Self-service profile
	register("/api/users/profile", protect(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			d.Users.GetProfile(w, r)
		case http.MethodPut:
			d.Users.UpdateProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Admin user management
	register("/api/users", adminOnly(requireMethod(http.MethodGet, d.Users.GetAllUsers)))
	register("/api/users/", adminOnly(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/users/")
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			d.Users.GetUserByID(w, r, id)
		case http.MethodPut:
			d.Users.UpdateUserByAdmin(w, r, id)
		case http.MethodDelete:
			d.Users.DeleteUser(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Booking create (user) & list-all (admin)
	register("/api/appointments", protect(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			d.Appointments.CreateAppointment(w, r)
		case http.MethodGet:
			middleware.AdminOnly(d.Appointments.GetAllBookings)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	register("/api/appointments/mybookings", protect(requireMethod(http.MethodGet, d.Appointments.GetMyBookings)))

	// Booking by ID plus the pay / report sub-routes
	register("/api/appointments/", protect(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/appointments/"), "/")
		if parts[0] == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		id := parts[0]

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			d.Appointments.GetBookingByID(w, r, id)
		case len(parts) == 1 && r.Method == http.MethodPut:
			middleware.AdminOnly(func(w http.ResponseWriter, r *http.Request) {
				d.Appointments.UpdateBookingByAdmin(w, r, id)
			})(w, r)
		case len(parts) == 2 && parts[1] == "pay" && r.Method == http.MethodPut:
			d.Appointments.ConfirmPayment(w, r, id)
		case len(parts) == 2 && parts[1] == "report" && r.Method == http.MethodPut:
			middleware.AdminOnly(func(w http.ResponseWriter, r *http.Request) {
				d.Appointments.AttachReport(w, r, id)
			})(w, r)
		case len(parts) == 3 && parts[1] == "report" && parts[2] == "pdf" && r.Method == http.MethodPost:
			middleware.AdminOnly(func(w http.ResponseWriter, r *http.Request) {
				d.Reports.GenerateReport(w, r, id)
			})(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	// Admin dashboard
	register("/api/admin/stats", adminOnly(requireMethod(http.MethodGet, d.Admin.GetDashboardStats)))

	// Public routes
	register("/api/contact", requireMethod(http.MethodPost, d.Contact.SubmitContactForm))
	register("/api/astro/life-path", requireMethod(http.MethodGet, d.Astro.LifePath))
	register("/api/astro/moon-phase", requireMethod(http.MethodGet, d.Astro.MoonPhase))
}

func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			handlers.WriteError(w, http.StatusMethodNotAllowed, "Invalid request method")
			return
		}
		h(w, r)
	}
}
