package controllers

import (
	"net/http"

	"github.com/feedbacklink-io/feedbacklink-backend/api/middleware"
	"github.com/feedbacklink-io/feedbacklink-backend/api/responses"
	"github.com/feedbacklink-io/feedbacklink-backend/api/validators"
	"github.com/feedbacklink-io/feedbacklink-backend/internal/auth"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/logger"
)

func sessionIDOrError(r *http.Request) (string, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", errors.New(errors.CodeUnauthorized, "missing session id")
	}
	return sessionID, nil
}

// SessionFetch returns the session state the client's layout switches on.
func SessionFetch(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Session(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// SessionSetView moves the session to the named screen.
func SessionSetView(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.SetViewRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.SetView(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// SessionSetSelection targets an employee for the feedback screen; a null id
// clears the target.
func SessionSetSelection(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.SetSelectionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.SetSelection(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
