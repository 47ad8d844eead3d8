package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"shopease/internal/middleware"
	"shopease/internal/models"
	"shopease/internal/services"
)

// AuthHandler serves registration, login and profile endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
	logger      zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	result, err := h.authService.Register(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusCreated, "User registered successfully", result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Login successful", result)
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	profile, err := h.authService.GetProfile(user.ID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", map[string]interface{}{"user": profile})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req models.UserUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	updated, err := h.authService.UpdateProfile(user.ID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Profile updated successfully", map[string]interface{}{"user": updated})
}
