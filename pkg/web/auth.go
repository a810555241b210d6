package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/teamwallet/teamwallet/pkg/backend"
	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// AuthController registers the registration and login routes.
func AuthController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/v1/auth/register", postRegister).Methods(http.MethodPost)
	r.HandleFunc("/v1/auth/login", postLogin).Methods(http.MethodPost)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

func postRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	u, err := be.CreateUser(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		renderError(w, err)
		return
	}

	renderSession(w, r, u)
}

func postLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, err)
		return
	}

	u, err := be.UserByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		renderError(w, err)
		return
	}

	renderSession(w, r, u)
}

func renderSession(w http.ResponseWriter, r *http.Request, u proto.User) {
	cfg := config.FromContext(r.Context())
	token, err := mintSessionToken(cfg, u)
	if err != nil {
		log.FromContext(r.Context()).Error("failed to sign session token", "err", err)
		renderStatus(http.StatusInternalServerError)(w, r)
		return
	}

	renderJSON(w, http.StatusOK, sessionResponse{
		Token:    token,
		UserID:   u.ID(),
		Username: u.Username(),
	})
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

func mintSessionToken(cfg *config.Config, u proto.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID(), 10),
			Issuer:    cfg.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Auth.SessionDuration) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.SessionSecret)) //nolint:wrapcheck
}

// parseSessionToken validates a session token and returns the user ID.
func parseSessionToken(cfg *config.Config, raw string) (int64, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.Auth.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(cfg.Name))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return strconv.ParseInt(claims.Subject, 10, 64) //nolint:wrapcheck
}

// withUser wraps a handler with bearer token authentication. The resolved
// user is passed to the handler.
func withUser(next func(w http.ResponseWriter, r *http.Request, u proto.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cfg := config.FromContext(ctx)
		be := backend.FromContext(ctx)

		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			renderStatus(http.StatusUnauthorized)(w, r)
			return
		}

		id, err := parseSessionToken(cfg, raw)
		if err != nil {
			renderStatus(http.StatusUnauthorized)(w, r)
			return
		}

		u, err := be.UserByID(ctx, id)
		if err != nil {
			renderStatus(http.StatusUnauthorized)(w, r)
			return
		}

		next(w, r, u)
	}
}
