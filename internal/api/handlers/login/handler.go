package login

import (
	"errors"
	"net/http"

	"github.com/dungeon-app/booking-service/internal/api/handlers"
	usersService "github.com/dungeon-app/booking-service/internal/service/users"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCredentials = "e-mail ou senha incorretos"
	msgAccountBlocked     = "conta bloqueada, procure a administração"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type Handler struct {
	authenticator UserAuthenticator
	tokens        TokenGenerator
	logger        Logger
}

func NewHandler(authenticator UserAuthenticator, tokens TokenGenerator, logger Logger) *Handler {
	return &Handler{
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials")
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		case errors.Is(err, usersService.ErrAccountBlocked):
			h.logger.Warn("POST /auth/login - Blocked account")
			handlers.RespondError(w, http.StatusForbidden, msgAccountBlocked)

		default:
			h.logger.Error("POST /auth/login - Failed to authenticate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Role)
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to generate token for user_id=%d: %v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User authenticated: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
		Status: string(user.Status),
	})
}
