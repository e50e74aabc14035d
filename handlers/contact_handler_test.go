package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shubhampawale7/Acharya-Beena/handlers"
)

type fakeMailer struct {
	err     error
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	return m.err
}

func TestSubmitContactForm(t *testing.T) {
	mailer := &fakeMailer{}
	h := &handlers.ContactHandler{Mailer: mailer, Inbox: "beena@example.com"}

	req := httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(t, map[string]string{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"subject": "Gemstone consultation",
		"message": "Which stone suits my chart?",
	}))
	rec := httptest.NewRecorder()
	h.SubmitContactForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if mailer.to != "beena@example.com" {
		t.Errorf("sent to %q, want inbox", mailer.to)
	}
	if !strings.Contains(mailer.subject, "Gemstone consultation") {
		t.Errorf("subject = %q", mailer.subject)
	}
	for _, want := range []string{"Ravi", "ravi@example.com", "Which stone suits my chart?", "Not provided"} {
		if !strings.Contains(mailer.body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSubmitContactFormValidation(t *testing.T) {
	h := &handlers.ContactHandler{Mailer: &fakeMailer{}, Inbox: "beena@example.com"}

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "a@b.com", "message": "hi"}},
		{"missing email", map[string]string{"name": "A", "message": "hi"}},
		{"missing message", map[string]string{"name": "A", "email": "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.SubmitContactForm(rec, httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(t, tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSubmitContactFormMailerFailure(t *testing.T) {
	h := &handlers.ContactHandler{
		Mailer: &fakeMailer{err: errors.New("smtp: connection refused")},
		Inbox:  "beena@example.com",
	}

	req := httptest.NewRequest(http.MethodPost, "/api/contact", jsonBody(t, map[string]string{
		"name": "Ravi", "email": "ravi@example.com", "message": "hello",
	}))
	rec := httptest.NewRecorder()
	h.SubmitContactForm(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if msg := decodeResponse(t, rec).Message; !strings.Contains(msg, "Failed to send message") {
		t.Errorf("message = %q", msg)
	}
}
