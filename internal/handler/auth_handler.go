package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Arunkumar3624/EMS/internal/dto"
	"github.com/Arunkumar3624/EMS/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "all fields are required", err.Error())
		return
	}

	resp, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "username/email and password required", err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "refresh token required", err.Error())
		return
	}

	resp, err := h.authService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func (h *AuthHandler) MyProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(h.logger, w, r)
	if !ok {
		return
	}

	resp, err := h.authService.Profile(r.Context(), identity)
	if err != nil {
		handleServiceError(h.logger, w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}
