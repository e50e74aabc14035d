package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/shubhampawale7/Acharya-Beena/models"
	"github.com/shubhampawale7/Acharya-Beena/repository"
)

// ReportRenderer produces the consultation-report PDF for a booking.
// A (nil, nil) return means the booking is absent.
type ReportRenderer interface {
	Render(repo *repository.ReportRepository, appointmentID string) ([]byte, error)
}

// ChromeRenderer renders through headless Chrome.
type ChromeRenderer struct{}

func (ChromeRenderer) Render(repo *repository.ReportRepository, appointmentID string) ([]byte, error) {
	return GenerateConsultationReport(repo, appointmentID)
}

// GenerateConsultationReport renders the consultation report for a booking
// and returns the PDF bytes. Returns (nil, nil) when the booking is absent.
func GenerateConsultationReport(repo *repository.ReportRepository, appointmentID string) ([]byte, error) {
	booking, err := repo.GetAppointmentForReport(appointmentID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	tmpl, err := template.ParseFiles("templates/report_template.html")
	if err != nil {
		return nil, err
	}

	clientName := "Client"
	if booking.User != nil {
		clientName = booking.User.Name
	}

	dateStr := booking.AppointmentDate.Format("02-Jan-2006")
	lifePath, _ := LifePathNumber(booking.AppointmentDate.Format("2006-01-02"))

	data := models.ReportPDFData{
		Appointment: booking,
		ClientName:  clientName,
		Date:        dateStr,
		PriceWords:  RupeesInWords(booking.ServicePrice),
		LifePath:    lifePath,
		MoonPhase:   MoonPhase(booking.AppointmentDate),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Georgia, 'Times New Roman', serif;
			font-size: 13px;
			margin: 0;
			padding: 0;
		}
		.report {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body><div class='report'>` + body.String() + `</div></body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "report_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
