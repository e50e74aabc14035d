package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/shubhampawale7/Acharya-Beena/auth"
	"github.com/shubhampawale7/Acharya-Beena/middleware"
	"github.com/shubhampawale7/Acharya-Beena/models"
	"github.com/shubhampawale7/Acharya-Beena/repository"
)

type UserHandler struct {
	Repo   repository.UserRepository
	Secret string
}

// identityPayload is the register/login/profile-update response body.
type identityPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	existing, err := h.Repo.GetUserByEmail(req.Email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if existing != nil {
		WriteError(w, http.StatusConflict, "User already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	// Self-registration never grants admin.
	user := &models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	token, err := auth.MakeToken(user.ID, h.Secret)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    identityPayload{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token},
	})
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByEmail(creds.Email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	// Same response for unknown email and wrong password.
	if user == nil || !auth.CheckPassword(user.Password, creds.Password) {
		WriteError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.MakeToken(user.ID, h.Secret)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data:    identityPayload{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token},
	})
}

// emailTaken reports whether email belongs to a user other than selfID.
// Email is unique across all users; updates must hold the same invariant
// Register enforces.
func (h *UserHandler) emailTaken(email, selfID string) (bool, error) {
	existing, err := h.Repo.GetUserByEmail(email)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.ID != selfID, nil
}

// GetProfile handles GET /api/users/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    identityPayload{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByID(caller.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if user == nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		taken, err := h.emailTaken(req.Email, user.ID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Server Error")
			return
		}
		if taken {
			WriteError(w, http.StatusConflict, "Email already in use")
			return
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Server Error")
			return
		}
		user.Password = hash
	}

	if err := h.Repo.UpdateUser(user); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
		return
	}

	token, err := auth.MakeToken(user.ID, h.Secret)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Profile updated",
		Data:    identityPayload{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token},
	})
}

// GetAllUsers handles GET /api/users (admin)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.GetAllUsers()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	for _, u := range users {
		u.Sanitize()
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: users})
}

// GetUserByID handles GET /api/users/{id} (admin)
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request, id string) {
	user, err := h.Repo.GetUserByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if user == nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: user.Sanitize()})
}

// UpdateUserByAdmin handles PUT /api/users/{id} (admin)
func (h *UserHandler) UpdateUserByAdmin(w http.ResponseWriter, r *http.Request, id string) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Role != "" && req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		WriteError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	user, err := h.Repo.GetUserByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if user == nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		taken, err := h.emailTaken(req.Email, user.ID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Server Error")
			return
		}
		if taken {
			WriteError(w, http.StatusConflict, "Email already in use")
			return
		}
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}

	if err := h.Repo.UpdateUser(user); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "User updated", Data: user.Sanitize()})
}

// DeleteUser handles DELETE /api/users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request, id string) {
	caller := middleware.UserFromContext(r.Context())
	if caller.ID == id {
		WriteError(w, http.StatusBadRequest, "Cannot delete your own account")
		return
	}

	user, err := h.Repo.GetUserByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if user == nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}

	// Bookings that reference this user are left in place.
	if err := h.Repo.DeleteUser(id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to delete user: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "User removed successfully"})
}
