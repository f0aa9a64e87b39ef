package workspace

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myvault"
)

const (
	maxThreads = 10
)

//go:generate mockgen -source=clients.go -package workspace -destination clients_mock.go CalendarClient,GmailClient
type CalendarClient interface {
	CreateEvent(c context.Context, token myvault.Token, summary string, startISO string, endISO string) (*calendar.Event, error)
}

type GmailClient interface {
	ListThreads(c context.Context, token myvault.Token) (*gmail.ListThreadsResponse, error)
	SendMessage(c context.Context, token myvault.Token, to string, subject string, body string) (*gmail.Message, error)
}

// googleClients talks to the Calendar and Gmail APIs on the user's behalf.
// The token source is derived from the oauth config so an expired access
// token is refreshed transparently.
type googleClients struct {
	config *oauth2.Config
}

func NewGoogleClients(config *oauth2.Config) *googleClients {
	return &googleClients{
		config: config,
	}
}

func (g googleClients) tokenSource(c context.Context, token myvault.Token) oauth2.TokenSource {
	oauthToken := &oauth2.Token{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if token.Expiry != nil {
		oauthToken.Expiry = *token.Expiry
	}

	return g.config.TokenSource(c, oauthToken)
}

func (g googleClients) CreateEvent(c context.Context, token myvault.Token, summary string, startISO string, endISO string) (*calendar.Event, error) {
	service, err := calendar.NewService(c, option.WithTokenSource(g.tokenSource(c, token)))
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error creating calendar client: %s", err))
	}

	event, err := service.Events.Insert("primary", &calendar.Event{
		Summary: summary,
		Start:   &calendar.EventDateTime{DateTime: startISO},
		End:     &calendar.EventDateTime{DateTime: endISO},
	}).Context(c).Do()
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error inserting event: %s", err))
	}

	return event, nil
}

func (g googleClients) ListThreads(c context.Context, token myvault.Token) (*gmail.ListThreadsResponse, error) {
	service, err := gmail.NewService(c, option.WithTokenSource(g.tokenSource(c, token)))
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error creating gmail client: %s", err))
	}

	threads, err := service.Users.Threads.List("me").MaxResults(maxThreads).Context(c).Do()
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error listing threads: %s", err))
	}

	return threads, nil
}

func (g googleClients) SendMessage(c context.Context, token myvault.Token, to string, subject string, body string) (*gmail.Message, error) {
	service, err := gmail.NewService(c, option.WithTokenSource(g.tokenSource(c, token)))
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error creating gmail client: %s", err))
	}

	message, err := service.Users.Messages.Send("me", &gmail.Message{
		Raw: composeRawMessage(to, subject, body),
	}).Context(c).Do()
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error sending message: %s", err))
	}

	return message, nil
}

// composeRawMessage builds an RFC 2822 plain-text message, base64url
// encoded the way the gmail api wants it
func composeRawMessage(to string, subject string, body string) string {
	message := fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body)

	return base64.URLEncoding.EncodeToString([]byte(message))
}
