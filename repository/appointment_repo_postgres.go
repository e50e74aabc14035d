package repository

import (
	"database/sql"
	"time"

	"github.com/shubhampawale7/Acharya-Beena/models"
)

type PostgresAppointmentRepo struct {
	DB *sql.DB
}

func NewPostgresAppointmentRepo(db *sql.DB) *PostgresAppointmentRepo {
	return &PostgresAppointmentRepo{DB: db}
}

const appointmentColumns = `
	a.id, a.user_id, a.service_name, a.service_price, a.appointment_date,
	a.status, a.payment_id, a.payment_status, a.paid_at,
	a.client_notes, a.practitioner_notes, a.report_url,
	a.created_at, a.updated_at,
	u.id, u.name, u.email`

func (r *PostgresAppointmentRepo) CreateAppointment(a *models.Appointment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO appointment
			(id, user_id, service_name, service_price, appointment_date, status,
			 payment_id, payment_status, paid_at, client_notes, practitioner_notes,
			 report_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`, a.ID, a.UserID, a.ServiceName, a.ServicePrice, a.AppointmentDate, a.Status,
		nullStr(a.PaymentInfo.PaymentID), a.PaymentInfo.Status, a.PaymentInfo.PaidAt,
		a.ClientNotes, a.PractitionerNote, a.ReportURL, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *PostgresAppointmentRepo) GetAppointmentByID(id string) (*models.Appointment, error) {
	row := r.DB.QueryRow(`
		SELECT `+appointmentColumns+`
		FROM appointment a
		LEFT JOIN app_user u ON u.id = a.user_id
		WHERE a.id = $1
	`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *PostgresAppointmentRepo) GetAppointmentsByUser(userID string) ([]*models.Appointment, error) {
	return r.queryAppointments(`
		SELECT `+appointmentColumns+`
		FROM appointment a
		LEFT JOIN app_user u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.appointment_date DESC
	`, userID)
}

func (r *PostgresAppointmentRepo) GetAllAppointments() ([]*models.Appointment, error) {
	return r.queryAppointments(`
		SELECT ` + appointmentColumns + `
		FROM appointment a
		LEFT JOIN app_user u ON u.id = a.user_id
		ORDER BY a.appointment_date DESC
	`)
}

func (r *PostgresAppointmentRepo) UpdateAppointment(a *models.Appointment) error {
	now := time.Now().UTC()
	a.UpdatedAt = &now

	_, err := r.DB.Exec(`
		UPDATE appointment SET
			service_name = $1, service_price = $2, appointment_date = $3,
			status = $4, payment_id = $5, payment_status = $6, paid_at = $7,
			client_notes = $8, practitioner_notes = $9, report_url = $10,
			updated_at = $11
		WHERE id = $12
	`, a.ServiceName, a.ServicePrice, a.AppointmentDate, a.Status,
		nullStr(a.PaymentInfo.PaymentID), a.PaymentInfo.Status, a.PaymentInfo.PaidAt,
		a.ClientNotes, a.PractitionerNote, a.ReportURL, a.UpdatedAt, a.ID)
	return err
}

func (r *PostgresAppointmentRepo) CountAppointments() (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM appointment`).Scan(&n)
	return n, err
}

func (r *PostgresAppointmentRepo) RevenueTotal() (float64, error) {
	var total float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(service_price), 0)
		FROM appointment
		WHERE status IN ($1, $2)
	`, models.StatusConfirmed, models.StatusCompleted).Scan(&total)
	return total, err
}

func (r *PostgresAppointmentRepo) RecentAppointments(limit int) ([]*models.Appointment, error) {
	return r.queryAppointments(`
		SELECT `+appointmentColumns+`
		FROM appointment a
		LEFT JOIN app_user u ON u.id = a.user_id
		ORDER BY a.created_at DESC
		LIMIT $1
	`, limit)
}

func (r *PostgresAppointmentRepo) queryAppointments(query string, args ...any) ([]*models.Appointment, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	a := &models.Appointment{}
	var paymentID sql.NullString
	var ownerID, ownerName, ownerEmail sql.NullString

	err := row.Scan(
		&a.ID, &a.UserID, &a.ServiceName, &a.ServicePrice, &a.AppointmentDate,
		&a.Status, &paymentID, &a.PaymentInfo.Status, &a.PaymentInfo.PaidAt,
		&a.ClientNotes, &a.PractitionerNote, &a.ReportURL,
		&a.CreatedAt, &a.UpdatedAt,
		&ownerID, &ownerName, &ownerEmail,
	)
	if err != nil {
		return nil, err
	}

	a.PaymentInfo.PaymentID = paymentID.String
	if ownerID.Valid {
		a.User = &models.User{ID: ownerID.String, Name: ownerName.String, Email: ownerEmail.String}
	}
	return a, nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
