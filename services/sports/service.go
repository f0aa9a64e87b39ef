package sports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

const (
	baseURL = "https://www.thesportsdb.com/api/v1/json"
)

type service struct {
	apiKey     string
	httpClient myhttpclient.HTTPSender
	logger     mylog.Logger
}

func newService(apiKey string, httpClient myhttpclient.HTTPSender, logger mylog.Logger) *service {
	if apiKey == "" {
		// "1" is the shared public key of thesportsdb
		apiKey = "1"
	}

	return &service{
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// teams searches on team name when one is given, else lists all teams of
// the given sport/league
func (s *service) teams(c context.Context, sport string, team string) (json.RawMessage, error) {
	var fullURL string

	if team != "" {
		s.logger.Log(c, "", mylog.SeverityInfo, "Search teams named '%s'", team)
		fullURL = fmt.Sprintf("%s/%s/searchteams.php?t=%s", baseURL, s.apiKey, url.QueryEscape(team))
	} else {
		s.logger.Log(c, "", mylog.SeverityInfo, "List all teams in league '%s'", sport)
		fullURL = fmt.Sprintf("%s/%s/search_all_teams.php?l=%s", baseURL, s.apiKey, url.QueryEscape(sport))
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet, fullURL, nil, nil)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling sports api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	return respBody, nil
}
