package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/shubhampawale7/Acharya-Beena/auth"
	"github.com/shubhampawale7/Acharya-Beena/handlers"
	"github.com/shubhampawale7/Acharya-Beena/middleware"
	"github.com/shubhampawale7/Acharya-Beena/models"
)

const testSecret = "test-secret"

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) handlers.ApiResponse {
	t.Helper()
	var resp handlers.ApiResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func seedUser(t *testing.T, repo *memUserRepo, role string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{
		ID:       uuid.New().String(),
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s@example.com", uuid.New().String()[:8]),
		Password: hash,
		Role:     role,
	}
	if err := repo.CreateUser(u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func authedRequest(method, target string, body *bytes.Reader, u *models.User) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	caller := *u
	caller.Password = ""
	return req.WithContext(middleware.WithUser(req.Context(), &caller))
}

func TestRegister(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", jsonBody(t, map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "testpass123",
	}))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	if data["role"] != models.RoleUser {
		t.Errorf("role = %v, self-registration must always yield %q", data["role"], models.RoleUser)
	}
	if data["token"] == "" || data["token"] == nil {
		t.Error("empty token")
	}

	stored, _ := repo.GetUserByEmail("asha@example.com")
	if stored == nil {
		t.Fatal("user not stored")
	}
	if stored.Password == "testpass123" {
		t.Error("password stored in the clear")
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}

	tests := []struct {
		name string
		body map[string]string
	}{
		{"empty name", map[string]string{"email": "a@b.com", "password": "x"}},
		{"empty email", map[string]string{"name": "A", "password": "x"}},
		{"empty password", map[string]string{"name": "A", "email": "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/users/register", jsonBody(t, tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	existing := seedUser(t, repo, models.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", jsonBody(t, map[string]string{
		"name": "Other", "email": existing.Email, "password": "testpass123",
	}))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	u := seedUser(t, repo, models.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", jsonBody(t, map[string]string{
		"email": u.Email, "password": "testpass123",
	}))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]any)
	if data["token"] == "" || data["token"] == nil {
		t.Error("empty token")
	}
}

func TestLoginRejections(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	u := seedUser(t, repo, models.RoleUser)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"unknown email", map[string]string{"email": "nobody@nowhere.com", "password": "testpass123"}},
		{"wrong password", map[string]string{"email": u.Email, "password": "wrongpass"}},
	}

	// same status and message for both, no user enumeration
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/users/login", jsonBody(t, tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if msg := decodeResponse(t, rec).Message; msg != "Invalid email or password" {
				t.Errorf("message = %q", msg)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	u := seedUser(t, repo, models.RoleUser)

	req := authedRequest(http.MethodPut, "/api/users/profile", jsonBody(t, map[string]string{
		"name": "Renamed",
	}), u)
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	stored, _ := repo.GetUserByID(u.ID)
	if stored.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", stored.Name)
	}
	if stored.Email != u.Email {
		t.Errorf("email changed unexpectedly to %q", stored.Email)
	}
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	a := seedUser(t, repo, models.RoleUser)
	b := seedUser(t, repo, models.RoleUser)

	req := authedRequest(http.MethodPut, "/api/users/profile", jsonBody(t, map[string]string{
		"email": a.Email,
	}), b)
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	stored, _ := repo.GetUserByID(b.ID)
	if stored.Email == a.Email {
		t.Errorf("two users now share email %q", a.Email)
	}

	// keeping the current email is not a conflict
	req = authedRequest(http.MethodPut, "/api/users/profile", jsonBody(t, map[string]string{
		"email": b.Email, "name": "Renamed",
	}), b)
	rec = httptest.NewRecorder()
	h.UpdateProfile(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("same-email update status = %d, want 200", rec.Code)
	}
}

func TestDeleteUserSelf(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	admin := seedUser(t, repo, models.RoleAdmin)

	req := authedRequest(http.MethodDelete, "/api/users/"+admin.ID, nil, admin)
	rec := httptest.NewRecorder()
	h.DeleteUser(rec, req, admin.ID)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("self-delete status = %d, want 400", rec.Code)
	}
	if stored, _ := repo.GetUserByID(admin.ID); stored == nil {
		t.Error("admin account was deleted")
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	admin := seedUser(t, repo, models.RoleAdmin)
	victim := seedUser(t, repo, models.RoleUser)

	req := authedRequest(http.MethodDelete, "/api/users/"+victim.ID, nil, admin)
	rec := httptest.NewRecorder()
	h.DeleteUser(rec, req, victim.ID)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if stored, _ := repo.GetUserByID(victim.ID); stored != nil {
		t.Error("user still present after delete")
	}

	// absent target
	rec = httptest.NewRecorder()
	h.DeleteUser(rec, authedRequest(http.MethodDelete, "/api/users/missing", nil, admin), "missing")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing target status = %d, want 404", rec.Code)
	}
}

func TestUpdateUserByAdmin(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	admin := seedUser(t, repo, models.RoleAdmin)
	target := seedUser(t, repo, models.RoleUser)

	req := authedRequest(http.MethodPut, "/api/users/"+target.ID, jsonBody(t, map[string]string{
		"role": models.RoleAdmin,
	}), admin)
	rec := httptest.NewRecorder()
	h.UpdateUserByAdmin(rec, req, target.ID)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	stored, _ := repo.GetUserByID(target.ID)
	if stored.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", stored.Role)
	}

	// bogus role
	rec = httptest.NewRecorder()
	h.UpdateUserByAdmin(rec, authedRequest(http.MethodPut, "/api/users/"+target.ID, jsonBody(t, map[string]string{
		"role": "superuser",
	}), admin), target.ID)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus role status = %d, want 400", rec.Code)
	}

	// another user's email
	rec = httptest.NewRecorder()
	h.UpdateUserByAdmin(rec, authedRequest(http.MethodPut, "/api/users/"+target.ID, jsonBody(t, map[string]string{
		"email": admin.Email,
	}), admin), target.ID)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate email status = %d, want 409", rec.Code)
	}
	stored, _ = repo.GetUserByID(target.ID)
	if stored.Email == admin.Email {
		t.Errorf("two users now share email %q", admin.Email)
	}
}

func TestGetAllUsersHidesPasswords(t *testing.T) {
	repo := newMemUserRepo()
	h := &handlers.UserHandler{Repo: repo, Secret: testSecret}
	admin := seedUser(t, repo, models.RoleAdmin)
	seedUser(t, repo, models.RoleUser)

	req := authedRequest(http.MethodGet, "/api/users", nil, admin)
	rec := httptest.NewRecorder()
	h.GetAllUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data []models.User `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("got %d users, want 2", len(resp.Data))
	}
	for _, u := range resp.Data {
		if u.Password != "" {
			t.Errorf("password leaked for %s", u.Email)
		}
	}
}
