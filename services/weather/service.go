package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

const (
	forecastURL = "https://api.open-meteo.com/v1/forecast"
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

// currentWeather returns the open-meteo response verbatim
func (s *service) currentWeather(c context.Context, lat float64, lon float64) (json.RawMessage, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch current weather for %v,%v", lat, lon)

	params := url.Values{
		"latitude":        []string{strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":       []string{strconv.FormatFloat(lon, 'f', -1, 64)},
		"current_weather": []string{"true"},
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet, forecastURL+"?"+params.Encode(), nil, nil)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling weather api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	return respBody, nil
}
