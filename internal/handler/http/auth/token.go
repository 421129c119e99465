package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/observability/metrics"
	authservice "newsdesk/internal/service/auth"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

type loginRequest struct {
	Email    string `json:"email" example:"admin@newsdesk.local"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = time.Hour

// TokenHandler authenticates staff and mints JWT tokens. The limiter
// is shared across all clients; the token endpoint is the obvious
// brute-force target, so it gets its own budget separate from the
// per-IP API limiter.
type TokenHandler struct {
	Auth    *authservice.Service
	Secret  []byte
	Limiter *rate.Limiter
}

// NewTokenHandler creates a token handler. The limiter allows 5
// attempts per second with a burst of 10.
func NewTokenHandler(auth *authservice.Service, secret []byte) *TokenHandler {
	return &TokenHandler{
		Auth:    auth,
		Secret:  secret,
		Limiter: rate.NewLimiter(5, 10),
	}
}

// ServeHTTP godoc
// @Summary      Issue a JWT token
// @Description  Authenticates a staff member by email and password and returns a signed token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login credentials"
// @Success      200 {object} tokenResponse
// @Failure      400 {string} string "malformed request"
// @Failure      401 {string} string "invalid credentials"
// @Failure      429 {string} string "too many attempts"
// @Failure      500 {string} string "token generation failed"
// @Router       /auth/token [post]
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

	if !h.Limiter.Allow() {
		w.Header().Set("Retry-After", "1")
		metrics.RecordTokenRequest(false)
		http.Error(w, "too many attempts", http.StatusTooManyRequests)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordTokenRequest(false)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Authenticate(r.Context(), authservice.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.RecordTokenRequest(false)
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		logger.Error("authentication lookup failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Email,
		"uid":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(TokenTTL).Unix(),
	})
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		metrics.RecordTokenRequest(false)
		logger.Error("token generation failed", slog.String("error", err.Error()))
		http.Error(w, "token generation failed", http.StatusInternalServerError)
		return
	}

	metrics.RecordTokenRequest(true)
	logger.Info("token issued",
		slog.String("user_email", user.Email),
		slog.String("role", user.Role),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
		logger.Error("failed to encode token response", slog.String("error", err.Error()))
	}
}
