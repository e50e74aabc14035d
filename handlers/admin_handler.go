package handlers

import (
	"net/http"

	"github.com/shubhampawale7/Acharya-Beena/models"
	"github.com/shubhampawale7/Acharya-Beena/repository"
)

type AdminHandler struct {
	UserRepo        repository.UserRepository
	AppointmentRepo repository.AppointmentRepository
}

type dashboardStats struct {
	UserCount      int64                 `json:"user_count"`
	BookingCount   int64                 `json:"booking_count"`
	TotalRevenue   float64               `json:"total_revenue"`
	RecentBookings []*models.Appointment `json:"recent_bookings"`
}

// GetDashboardStats handles GET /api/admin/stats. Revenue counts only
// Confirmed and Completed bookings.
func (h *AdminHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	userCount, err := h.UserRepo.CountUsers()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	bookingCount, err := h.AppointmentRepo.CountAppointments()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	revenue, err := h.AppointmentRepo.RevenueTotal()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	recent, err := h.AppointmentRepo.RecentAppointments(5)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if recent == nil {
		recent = []*models.Appointment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: dashboardStats{
			UserCount:      userCount,
			BookingCount:   bookingCount,
			TotalRevenue:   revenue,
			RecentBookings: recent,
		},
	})
}
