package repository

import "github.com/shubhampawale7/Acharya-Beena/models"

// AppointmentRepository defines the interface for booking storage operations.
// Lookups return (nil, nil) when no record exists. Appointments are never
// deleted; a user delete leaves its bookings in place.
type AppointmentRepository interface {
	CreateAppointment(a *models.Appointment) error
	GetAppointmentByID(id string) (*models.Appointment, error)
	GetAppointmentsByUser(userID string) ([]*models.Appointment, error)
	GetAllAppointments() ([]*models.Appointment, error)
	UpdateAppointment(a *models.Appointment) error
	CountAppointments() (int64, error)
	// RevenueTotal sums service_price across Confirmed and Completed bookings.
	RevenueTotal() (float64, error)
	RecentAppointments(limit int) ([]*models.Appointment, error)
}
