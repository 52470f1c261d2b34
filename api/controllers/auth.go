package controllers

import (
	"net/http"
	"strings"

	"github.com/feedbacklink-io/feedbacklink-backend/api/responses"
	"github.com/feedbacklink-io/feedbacklink-backend/api/validators"
	"github.com/feedbacklink-io/feedbacklink-backend/internal/auth"
	pkgAuth "github.com/feedbacklink-io/feedbacklink-backend/pkg/auth"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/config"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/logger"
)

func parseBearerToken(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return "", errors.New(errors.CodeUnauthorized, "missing credentials")
	}
	token := raw
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return "", errors.New(errors.CodeUnauthorized, "missing credentials")
	}
	return token, nil
}

// AuthLogin resolves the submitted email into a user, opens a session, and
// returns the bearer token the client presents from here on.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("X-FL-Token", resp.AccessToken)
		responses.WriteSuccess(w, resp)
	}
}

// AuthLogout closes the session named by the presented token. An expired
// token still logs out; the jti is all that matters.
func AuthLogout(svc auth.Service, cfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := parseBearerToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		claims, err := pkgAuth.ParseAccessTokenAllowExpired(cfg, token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, errors.Wrap(errors.CodeUnauthorized, err, "invalid token"))
			return
		}

		if claims.ID == "" {
			responses.WriteError(r.Context(), logg, w, errors.New(errors.CodeUnauthorized, "missing session id"))
			return
		}

		if err := svc.Logout(r.Context(), claims.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}
