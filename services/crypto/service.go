package crypto

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
	simplePriceURL = "https://api.coingecko.com/api/v3/simple/price"
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

// prices returns the coingecko simple-price response verbatim, including
// the 24 hour change
func (s *service) prices(c context.Context, ids string, vsCurrency string) (json.RawMessage, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch crypto prices for %s in %s", ids, vsCurrency)

	params := url.Values{
		"ids": []string{ids},
		// coingecko wants the plural form here
		"vs_currencies":       []string{vsCurrency},
		"include_24hr_change": []string{"true"},
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet, simplePriceURL+"?"+params.Encode(), nil, nil)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling crypto api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	return respBody, nil
}
