package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedbacklink-io/feedbacklink-backend/api/responses"
	"github.com/feedbacklink-io/feedbacklink-backend/api/validators"
	"github.com/feedbacklink-io/feedbacklink-backend/internal/feedback"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/errors"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/logger"
)

// FeedbackSubmit records a feedback entry authored by the acting manager.
func FeedbackSubmit(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body feedback.SubmitRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Submit(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// FeedbackAcknowledge marks the entry as seen. Repeats and unknown ids both
// return 200; the body says whether the id resolved.
func FeedbackAcknowledge(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		feedbackID := chi.URLParam(r, "feedbackId")
		if feedbackID == "" {
			responses.WriteError(r.Context(), logg, w, errors.New(errors.CodeValidation, "feedback id required"))
			return
		}

		resp, err := svc.Acknowledge(r.Context(), sessionID, feedbackID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// FeedbackList returns the history slice the acting role may read.
func FeedbackList(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Visible(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// FeedbackRequestCreate records an employee's ask for feedback, routed to
// their manager.
func FeedbackRequestCreate(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body feedback.RequestFeedbackRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Request(r.Context(), sessionID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// FeedbackRequestList returns the feedback requests visible to the actor.
func FeedbackRequestList(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDOrError(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.Requests(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
