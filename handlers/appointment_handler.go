package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shubhampawale7/Acharya-Beena/middleware"
	"github.com/shubhampawale7/Acharya-Beena/models"
	"github.com/shubhampawale7/Acharya-Beena/repository"
)

type AppointmentHandler struct {
	Repo repository.AppointmentRepository
}

// CreateAppointment handles POST /api/appointments
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	var req struct {
		ServiceName     string     `json:"service_name"`
		ServicePrice    float64    `json:"service_price"`
		AppointmentDate *time.Time `json:"appointment_date"`
		ClientNotes     *string    `json:"client_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.ServiceName == "" || req.ServicePrice <= 0 || req.AppointmentDate == nil {
		WriteError(w, http.StatusBadRequest, "Missing required appointment details")
		return
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		UserID:          caller.ID,
		ServiceName:     req.ServiceName,
		ServicePrice:    req.ServicePrice,
		AppointmentDate: *req.AppointmentDate,
		Status:          models.StatusPending,
		PaymentInfo:     models.PaymentInfo{Status: models.PaymentPending},
		ClientNotes:     req.ClientNotes,
	}

	if err := h.Repo.CreateAppointment(appt); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create appointment: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Appointment booked", Data: appt})
}

// GetMyBookings handles GET /api/appointments/mybookings
func (h *AppointmentHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	bookings, err := h.Repo.GetAppointmentsByUser(caller.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if bookings == nil {
		bookings = []*models.Appointment{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bookings})
}

// GetAllBookings handles GET /api/appointments (admin)
func (h *AppointmentHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Repo.GetAllAppointments()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if bookings == nil {
		bookings = []*models.Appointment{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bookings})
}

// GetBookingByID handles GET /api/appointments/{id}; the owner or an admin
// may view a booking.
func (h *AppointmentHandler) GetBookingByID(w http.ResponseWriter, r *http.Request, id string) {
	caller := middleware.UserFromContext(r.Context())

	booking, err := h.Repo.GetAppointmentByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if booking == nil {
		WriteError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.UserID != caller.ID && caller.Role != models.RoleAdmin {
		WriteError(w, http.StatusForbidden, "Not authorized to view this booking")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: booking})
}

// ConfirmPayment handles PUT /api/appointments/{id}/pay. The payment gateway
// is simulated: confirming always succeeds and marks the booking paid.
// Repeat calls overwrite the payment reference.
func (h *AppointmentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request, id string) {
	caller := middleware.UserFromContext(r.Context())

	booking, err := h.Repo.GetAppointmentByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if booking == nil {
		WriteError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.UserID != caller.ID {
		WriteError(w, http.StatusForbidden, "Not authorized to update this booking")
		return
	}

	now := time.Now().UTC()
	booking.Status = models.StatusConfirmed
	booking.PaymentInfo.Status = models.PaymentPaid
	booking.PaymentInfo.PaidAt = &now
	booking.PaymentInfo.PaymentID = fmt.Sprintf("simulated_%d", now.UnixMilli())

	if err := h.Repo.UpdateAppointment(booking); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update booking: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Payment confirmed", Data: booking})
}

// UpdateBookingByAdmin handles PUT /api/appointments/{id} (admin). Any
// current state may be overwritten with any of the four states; Confirmed
// forces the payment sub-record to Paid.
func (h *AppointmentHandler) UpdateBookingByAdmin(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Status            string  `json:"status"`
		PractitionerNotes *string `json:"practitioner_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Status != "" && !models.ValidStatus(req.Status) {
		WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	booking, err := h.Repo.GetAppointmentByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if booking == nil {
		WriteError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if req.Status != "" {
		booking.Status = req.Status
		if req.Status == models.StatusConfirmed {
			now := time.Now().UTC()
			booking.PaymentInfo.Status = models.PaymentPaid
			booking.PaymentInfo.PaidAt = &now
		}
	}
	if req.PractitionerNotes != nil {
		booking.PractitionerNote = req.PractitionerNotes
	}

	if err := h.Repo.UpdateAppointment(booking); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update booking: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Booking updated", Data: booking})
}

// AttachReport handles PUT /api/appointments/{id}/report (admin)
func (h *AppointmentHandler) AttachReport(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		ReportURL string `json:"report_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.ReportURL == "" {
		WriteError(w, http.StatusBadRequest, "report_url is required")
		return
	}

	booking, err := h.Repo.GetAppointmentByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if booking == nil {
		WriteError(w, http.StatusNotFound, "Booking not found")
		return
	}

	booking.ReportURL = &req.ReportURL
	if err := h.Repo.UpdateAppointment(booking); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update booking: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Report attached", Data: booking})
}
