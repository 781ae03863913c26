package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rookgm/streammart/internal/models"
)

type AuthService interface {
	// Login checks password and one-time code and returns a signed token
	Login(ctx context.Context, login, password, otp string) (string, error)
}

// AuthHandler represents HTTP handler for admin authentication
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

// LoginAdmin authenticates an admin user
// 200 — успешная аутентификация, токен выставлен в cookie;
// 400 — неверный формат запроса;
// 401 — неверные учётные данные или одноразовый код;
// 500 — внутренняя ошибка сервера.
func (ah *AuthHandler) LoginAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := ah.svc.Login(r.Context(), req.Login, req.Password, req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrInvalidOTP):
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "auth_token",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		w.WriteHeader(http.StatusOK)
	}
}
