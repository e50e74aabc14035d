package handlers_test

import (
	"sort"
	"time"

	"github.com/shubhampawale7/Acharya-Beena/models"
)

// In-memory repositories for handler tests. Lookups return copies so the
// stored records are not mutated through handler side effects, matching the
// decode-per-read behavior of the real stores.

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (r *memUserRepo) CreateUser(u *models.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetUserByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(u), nil
}

func (r *memUserRepo) UpdateUser(u *models.User) error {
	r.users[u.ID] = copyUser(u)
	return nil
}

func (r *memUserRepo) DeleteUser(id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) GetAllUsers() ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, copyUser(u))
	}
	return out, nil
}

func (r *memUserRepo) CountUsers() (int64, error) {
	return int64(len(r.users)), nil
}

type memAppointmentRepo struct {
	appointments map[string]*models.Appointment
	users        *memUserRepo
}

func newMemAppointmentRepo(users *memUserRepo) *memAppointmentRepo {
	return &memAppointmentRepo{
		appointments: make(map[string]*models.Appointment),
		users:        users,
	}
}

func copyAppointment(a *models.Appointment) *models.Appointment {
	c := *a
	c.User = nil
	return &c
}

func (r *memAppointmentRepo) CreateAppointment(a *models.Appointment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	r.appointments[a.ID] = copyAppointment(a)
	return nil
}

func (r *memAppointmentRepo) GetAppointmentByID(id string) (*models.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	c := copyAppointment(a)
	r.populate(c)
	return c, nil
}

func (r *memAppointmentRepo) GetAppointmentsByUser(userID string) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, a := range r.appointments {
		if a.UserID == userID {
			out = append(out, copyAppointment(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (r *memAppointmentRepo) GetAllAppointments() ([]*models.Appointment, error) {
	out := make([]*models.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		c := copyAppointment(a)
		r.populate(c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (r *memAppointmentRepo) UpdateAppointment(a *models.Appointment) error {
	now := time.Now().UTC()
	a.UpdatedAt = &now
	r.appointments[a.ID] = copyAppointment(a)
	return nil
}

func (r *memAppointmentRepo) CountAppointments() (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *memAppointmentRepo) RevenueTotal() (float64, error) {
	total := 0.0
	for _, a := range r.appointments {
		if a.Status == models.StatusConfirmed || a.Status == models.StatusCompleted {
			total += a.ServicePrice
		}
	}
	return total, nil
}

func (r *memAppointmentRepo) RecentAppointments(limit int) ([]*models.Appointment, error) {
	out := make([]*models.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		c := copyAppointment(a)
		r.populate(c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memAppointmentRepo) populate(a *models.Appointment) {
	if r.users == nil {
		return
	}
	if u, _ := r.users.GetUserByID(a.UserID); u != nil {
		a.User = u.Sanitize()
	}
}
