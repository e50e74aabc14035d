package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/shubhampawale7/Acharya-Beena/utils"
)

type ContactHandler struct {
	Mailer utils.Mailer
	Inbox  string
}

// SubmitContactForm handles POST /api/contact. Public; relays the inquiry to
// the consultancy inbox over SMTP.
func (h *ContactHandler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		WriteError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}
	body := fmt.Sprintf(
		"<h1>New Inquiry from Website</h1>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<hr/><h2>Message:</h2><p>%s</p>",
		req.Name, req.Email, phone, req.Message,
	)
	subject := "New Contact Form Submission: " + req.Subject

	if err := h.Mailer.Send(h.Inbox, subject, body); err != nil {
		log.Printf("contact mail: %v", err)
		WriteError(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Message sent successfully!"})
}
