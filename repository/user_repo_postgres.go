package repository

import (
	"database/sql"
	"time"

	"github.com/shubhampawale7/Acharya-Beena/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.Exec(`
		INSERT INTO app_user (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Name, user.Email, user.Password, user.Role, user.CreatedAt)
	return err
}

func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.getUser(`
		SELECT id, name, email, password_hash, role, created_at
		FROM app_user WHERE email = $1
	`, email)
}

func (r *PostgresUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.getUser(`
		SELECT id, name, email, password_hash, role, created_at
		FROM app_user WHERE id = $1
	`, id)
}

func (r *PostgresUserRepo) getUser(query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(query, arg).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepo) UpdateUser(user *models.User) error {
	_, err := r.DB.Exec(`
		UPDATE app_user SET name = $1, email = $2, password_hash = $3, role = $4
		WHERE id = $5
	`, user.Name, user.Email, user.Password, user.Role, user.ID)
	return err
}

func (r *PostgresUserRepo) DeleteUser(id string) error {
	_, err := r.DB.Exec(`DELETE FROM app_user WHERE id = $1`, id)
	return err
}

func (r *PostgresUserRepo) GetAllUsers() ([]*models.User, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, email, password_hash, role, created_at
		FROM app_user ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *PostgresUserRepo) CountUsers() (int64, error) {
	var n int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM app_user`).Scan(&n)
	return n, err
}
