package repository

import (
	"github.com/shubhampawale7/Acharya-Beena/models"
)

// ReportRepository provides the data needed to render a consultation report.
type ReportRepository struct {
	AppointmentRepo AppointmentRepository
	UserRepo        UserRepository
}

func NewReportRepository(apptRepo AppointmentRepository, userRepo UserRepository) *ReportRepository {
	return &ReportRepository{
		AppointmentRepo: apptRepo,
		UserRepo:        userRepo,
	}
}

// GetAppointmentForReport fetches a booking with its owner attached.
func (r *ReportRepository) GetAppointmentForReport(id string) (*models.Appointment, error) {
	a, err := r.AppointmentRepo.GetAppointmentByID(id)
	if err != nil || a == nil {
		return a, err
	}
	if a.User == nil {
		owner, err := r.UserRepo.GetUserByID(a.UserID)
		if err != nil {
			return nil, err
		}
		a.User = owner.Sanitize()
	}
	return a, nil
}
