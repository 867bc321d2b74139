package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"inkwell/app/apperrors"
	"inkwell/app/services"
)

// AuthController handles account registration and token issue/revocation.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	user, err := ac.authService.Register(input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, user)
}

// SignIn handles POST /api/auth/sign_in.
func (ac *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var input services.SignInInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	token, err := ac.authService.SignIn(input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}

// SignOut handles POST /api/auth/sign_out. It revokes the presented token.
func (ac *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if err := ac.authService.SignOut(token); err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
