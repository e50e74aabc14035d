package models

import "time"

// Role values for User.Role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `json:"id" bson:"_id" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Password  string    `json:"password,omitempty" bson:"password" db:"password_hash"`
	Role      string    `json:"role" bson:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Sanitize blanks the password hash before the user is written to a response.
func (u *User) Sanitize() *User {
	if u != nil {
		u.Password = ""
	}
	return u
}
