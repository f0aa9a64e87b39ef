package workspace

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/superapp/lib/mycontext"
	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttp"
	"github.com/MarcGrol/superapp/lib/mylog"
	"github.com/MarcGrol/superapp/lib/myvault"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewWebService(vault myvault.VaultReader, calendarClient CalendarClient, gmailClient GmailClient) *webService {
	return &webService{
		logger:  mylog.New("workspace"),
		service: newService(vault, calendarClient, gmailClient),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/create_event", s.createEventPage()).Methods("POST")
	router.HandleFunc("/api/gmail_threads", s.gmailThreadsPage()).Methods("GET")
	router.HandleFunc("/api/gmail_send", s.gmailSendPage()).Methods("POST")

	return nil
}

func (s *webService) createEventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req, err := parseRequest[CreateEventRequest](r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		if req.Summary == "" || req.StartISO == "" || req.EndISO == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing summary, start_iso or end_iso"))
			return
		}

		event, err := s.service.createEvent(c, req)
		if err != nil {
			writeServiceError(c, errorWriter, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, event)
	}
}

func (s *webService) gmailThreadsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		threads, err := s.service.listThreads(c)
		if err != nil {
			writeServiceError(c, errorWriter, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, threads)
	}
}

func (s *webService) gmailSendPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req, err := parseRequest[SendMailRequest](r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		if req.To == "" || req.Subject == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing to or subject"))
			return
		}

		message, err := s.service.sendMail(c, req)
		if err != nil {
			writeServiceError(c, errorWriter, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, message)
	}
}

// writeServiceError maps the missing-credential case onto the well-known
// 401 payload and leaves everything else to the generic error writer.
func writeServiceError(c context.Context, writer myhttp.ResponseWriter, w http.ResponseWriter, errorCode int, err error) {
	if errors.Is(err, ErrNotAuthenticated) {
		writer.Write(c, w, http.StatusUnauthorized, myhttp.NotAuthenticatedResponse{
			Error: "not_authenticated",
		})
		return
	}
	writer.WriteError(c, w, errorCode, err)
}

func parseRequest[T any](r *http.Request) (T, error) {
	var req T

	err := r.ParseForm()
	if err != nil {
		return req, fmt.Errorf("error parsing form: %s", err)
	}

	err = form.NewDecoder().Decode(&req, r.Form)
	if err != nil {
		return req, fmt.Errorf("error decoding form: %s", err)
	}

	return req, nil
}
