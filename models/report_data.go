package models

// ReportPDFData is the template payload for a rendered consultation report.
type ReportPDFData struct {
	Appointment *Appointment
	ClientName  string
	Date        string // formatted appointment date
	PriceWords  string // service price in words for the payment summary
	LifePath    int    // life-path number derived from the appointment date
	MoonPhase   string // moon phase on the appointment date
}
