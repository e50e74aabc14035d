package handlers

import (
	"fmt"
	"net/http"

	"github.com/shubhampawale7/Acharya-Beena/repository"
	"github.com/shubhampawale7/Acharya-Beena/utils"
)

type ReportHandler struct {
	Repo     *repository.ReportRepository
	Renderer utils.ReportRenderer
	Uploader utils.ReportUploader
}

// GenerateReport handles POST /api/appointments/{id}/report/pdf (admin).
// Renders the consultation report, uploads it, and stores the public URL
// on the booking. A failed upload leaves the booking unchanged.
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request, id string) {
	pdfBytes, err := h.Renderer.Render(h.Repo, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to generate report: "+err.Error())
		return
	}
	if pdfBytes == nil {
		WriteError(w, http.StatusNotFound, "Booking not found")
		return
	}

	reportURL, err := h.Uploader.Upload(pdfBytes, fmt.Sprintf("report_%s.pdf", id))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to upload report: "+err.Error())
		return
	}

	booking, err := h.Repo.AppointmentRepo.GetAppointmentByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if booking == nil {
		WriteError(w, http.StatusNotFound, "Booking not found")
		return
	}

	booking.ReportURL = &reportURL
	if err := h.Repo.AppointmentRepo.UpdateAppointment(booking); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update booking: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Report generated",
		Data:    map[string]string{"report_url": reportURL},
	})
}
