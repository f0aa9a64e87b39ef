package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

const (
	interpreterURL = "https://overpass-api.de/api/interpreter"

	// ways and relations come back with a computed centroid
	maxResults = 20
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

func (s *service) nearby(c context.Context, lat float64, lon float64, radius int, amenity string) (json.RawMessage, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Find %s within %dm of %v,%v", amenity, radius, lat, lon)

	query := composeQuery(lat, lon, radius, amenity)

	status, respBody, err := s.httpClient.Send(c, http.MethodPost, interpreterURL, []byte(query),
		map[string]string{"Content-Type": "text/plain"})
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling overpass api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	return respBody, nil
}

func composeQuery(lat float64, lon float64, radius int, amenity string) string {
	latStr := strconv.FormatFloat(lat, 'f', -1, 64)
	lonStr := strconv.FormatFloat(lon, 'f', -1, 64)

	return fmt.Sprintf(`[out:json][timeout:25];
(
  node(around:%d,%s,%s)[amenity=%s];
  way(around:%d,%s,%s)[amenity=%s];
  relation(around:%d,%s,%s)[amenity=%s];
);
out center %d;
`, radius, latStr, lonStr, amenity,
		radius, latStr, lonStr, amenity,
		radius, latStr, lonStr, amenity,
		maxResults)
}
