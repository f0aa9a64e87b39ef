package googleoauth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes is the fixed scope set consented to: calendar event read/write,
// mailbox read/modify and mail send.
var Scopes = []string{
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/gmail.modify",
	"https://www.googleapis.com/auth/gmail.send",
}

// NewGoogleConfig reads the downloaded client-secrets file of the Google
// Cloud project and prepares the oauth2 config used for both the consent
// flow and the refresh-capable token sources.
func NewGoogleConfig(clientSecretsFile string, redirectURL string) (*oauth2.Config, error) {
	data, err := os.ReadFile(clientSecretsFile)
	if err != nil {
		return nil, fmt.Errorf("error reading client-secrets file %s: %s", clientSecretsFile, err)
	}

	config, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("error parsing client-secrets file %s: %s", clientSecretsFile, err)
	}

	config.RedirectURL = redirectURL

	return config, nil
}

//go:generate mockgen -source=oauth_client.go -package googleoauth -destination oauth_client_mock.go OauthClient
type OauthClient interface {
	ComposeAuthURL(c context.Context, state string) string
	Exchange(c context.Context, code string) (*oauth2.Token, error)
}

type googleOauthClient struct {
	config *oauth2.Config
}

func NewOauthClient(config *oauth2.Config) OauthClient {
	return &googleOauthClient{
		config: config,
	}
}

// ComposeAuthURL requests offline access and forced consent so a refresh
// token is issued even on re-authorization.
func (oc googleOauthClient) ComposeAuthURL(c context.Context, state string) string {
	return oc.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"))
}

func (oc googleOauthClient) Exchange(c context.Context, code string) (*oauth2.Token, error) {
	return oc.config.Exchange(c, code)
}
