package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/garnizeh/recruitd/internal/recruit"
	"github.com/garnizeh/recruitd/internal/security"
	"github.com/garnizeh/recruitd/internal/validate"
	"github.com/garnizeh/recruitd/pkg/models"
)

type AuthHandler struct {
	svc     *recruit.Service
	hasher  *security.Hasher
	issuer  *security.TokenIssuer
	schemas *requestSchemas
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(svc *recruit.Service, hasher *security.Hasher, issuer *security.TokenIssuer, schemas *requestSchemas) *AuthHandler {
	return &AuthHandler{svc: svc, hasher: hasher, issuer: issuer, schemas: schemas}
}

type signupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PersonNum string `json:"person_number"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := checkBody(r.Context(), h.schemas.signup, body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req signupRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := validate.Name(req.FirstName); err != nil {
		http.Error(w, "Invalid first name", http.StatusBadRequest)
		return
	}
	if err := validate.Name(req.LastName); err != nil {
		http.Error(w, "Invalid last name", http.StatusBadRequest)
		return
	}
	if err := validate.PersonNumber(req.PersonNum); err != nil {
		http.Error(w, "Invalid person number", http.StatusBadRequest)
		return
	}
	if err := validate.Username(req.Username); err != nil {
		http.Error(w, "Invalid username", http.StatusBadRequest)
		return
	}
	if err := validate.Email(req.Email); err != nil {
		http.Error(w, "Invalid email", http.StatusBadRequest)
		return
	}

	hash := h.hasher.Hash(req.Password, req.Username)
	result, err := h.svc.Signup(r.Context(), req.FirstName, req.LastName, req.PersonNum, req.Username, req.Email, hash)
	if err != nil {
		serviceUnavailable(w)
		return
	}
	switch result.Code {
	case recruit.CodeExistentUsername:
		http.Error(w, "Username already taken", http.StatusConflict)
		return
	case recruit.CodeExistentEmail:
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	token, err := h.issuer.Issue(req.Username, models.RoleApplicant)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, authResponse{Token: token}, http.StatusCreated)
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	cred, err := h.svc.Credential(ctx, req.Username)
	if err != nil {
		serviceUnavailable(w)
		return
	}
	if cred == nil || !h.hasher.Verify(req.Password, req.Username, cred.PasswordHash) {
		http.Error(w, "Credentials not found", http.StatusUnauthorized)
		return
	}

	role, err := h.svc.RoleOf(ctx, req.Username)
	if err != nil {
		serviceUnavailable(w)
		return
	}

	token, err := h.issuer.Issue(req.Username, role)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, authResponse{Token: token}, http.StatusOK)
}
