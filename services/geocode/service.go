package geocode

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
	searchURL = "https://nominatim.openstreetmap.org/search"

	// Nominatim policy requires an identifying client header
	userAgent = "superapp/1.0 (superapp@marcgrolconsultancy.nl)"

	maxResults = 5
)

type service struct {
	httpClient myhttpclient.HTTPSender
	logger     mylog.Logger
}

func newService(httpClient myhttpclient.HTTPSender, logger mylog.Logger) *service {
	return &service{
		httpClient: httpClient,
		logger:     logger,
	}
}

func (s *service) search(c context.Context, query string) (json.RawMessage, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Geocode '%s'", query)

	params := url.Values{
		"q":      []string{query},
		"format": []string{"json"},
		"limit":  []string{fmt.Sprintf("%d", maxResults)},
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet, searchURL+"?"+params.Encode(), nil,
		map[string]string{"User-Agent": userAgent})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling geocode api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	return respBody, nil
}
