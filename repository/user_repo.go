package repository

import "github.com/shubhampawale7/Acharya-Beena/models"

// UserRepository defines the interface for user storage operations.
// Lookups return (nil, nil) when no record exists.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id string) error
	GetAllUsers() ([]*models.User, error)
	CountUsers() (int64, error)
}
