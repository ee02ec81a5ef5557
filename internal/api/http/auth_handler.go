package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrental-backend/internal/service"
	"carrental-backend/internal/utils"
)

type AuthHandler struct {
	authSvc service.AuthService
	audit   *auditor
}

func NewAuthHandler(authSvc service.AuthService, audit *auditor) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, audit: audit}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var fields []FieldError
	if req.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}

	token, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.audit.respondError(w, r, "users.login", err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

type registerRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	DateOfBirth      string `json:"date_of_birth"`
	LicenseIssueDate string `json:"license_issue_date"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var fields []FieldError
	if req.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	}
	if len(req.Password) < 8 {
		fields = append(fields, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if _, err := utils.ParseDate(req.DateOfBirth); err != nil {
		fields = append(fields, FieldError{Field: "date_of_birth", Message: err.Error()})
	}
	if _, err := utils.ParseDate(req.LicenseIssueDate); err != nil {
		fields = append(fields, FieldError{Field: "license_issue_date", Message: err.Error()})
	}
	if len(fields) > 0 {
		writeValidationErrors(w, fields)
		return
	}

	user, token, err := h.authSvc.Register(r.Context(), req.Name, req.Email, req.Password, req.DateOfBirth, req.LicenseIssueDate)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.audit.respondError(w, r, "users.register", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

type profileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password != "" && len(req.Password) < 8 {
		writeValidationErrors(w, []FieldError{{Field: "password", Message: "password must be at least 8 characters"}})
		return
	}

	user, err := h.authSvc.UpdateProfile(r.Context(), actor, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.audit.respondError(w, r, "users.profile", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
