package workspace

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/mylog"
	"github.com/MarcGrol/superapp/lib/myvault"
	"github.com/MarcGrol/superapp/services/googleoauth"
)

// ErrNotAuthenticated indicates that no usable google credential is stored.
// The caller should complete the consent flow first.
var ErrNotAuthenticated = errors.New("not authenticated")

type service struct {
	vault    myvault.VaultReader
	calendar CalendarClient
	gmail    GmailClient
	logger   mylog.Logger
}

func newService(vault myvault.VaultReader, calendarClient CalendarClient, gmailClient GmailClient) *service {
	return &service{
		vault:    vault,
		calendar: calendarClient,
		gmail:    gmailClient,
		logger:   mylog.New("workspace"),
	}
}

func (s *service) loadToken(c context.Context) (myvault.Token, error) {
	token, exists, err := s.vault.Get(c, myvault.CreateTokenUID(googleoauth.ProviderName))
	if err != nil {
		return myvault.Token{}, myerrors.NewInternalError(fmt.Errorf("error fetching token: %s", err))
	}
	if !exists || token.AccessToken == "" {
		return myvault.Token{}, ErrNotAuthenticated
	}

	return token, nil
}

func (s *service) createEvent(c context.Context, req CreateEventRequest) (*calendar.Event, error) {
	token, err := s.loadToken(c)
	if err != nil {
		return nil, err
	}

	event, err := s.calendar.CreateEvent(c, token, req.Summary, req.StartISO, req.EndISO)
	if err != nil {
		return nil, err
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Created calendar event %s", event.Id)

	return event, nil
}

func (s *service) listThreads(c context.Context) (*gmail.ListThreadsResponse, error) {
	token, err := s.loadToken(c)
	if err != nil {
		return nil, err
	}

	threads, err := s.gmail.ListThreads(c, token)
	if err != nil {
		return nil, err
	}

	return threads, nil
}

func (s *service) sendMail(c context.Context, req SendMailRequest) (*gmail.Message, error) {
	token, err := s.loadToken(c)
	if err != nil {
		return nil, err
	}

	message, err := s.gmail.SendMessage(c, token, req.To, req.Subject, req.Body)
	if err != nil {
		return nil, err
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Sent mail %s to %s", message.Id, req.To)

	return message, nil
}
