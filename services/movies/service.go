package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

const (
	genreListURL = "https://api.themoviedb.org/3/genre/movie/list"
	discoverURL  = "https://api.themoviedb.org/3/discover/movie"
)

type service struct {
	apiKey     string
	httpClient myhttpclient.HTTPSender
	logger     mylog.Logger
}

func newService(apiKey string, httpClient myhttpclient.HTTPSender, logger mylog.Logger) *service {
	return &service{
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// discover lists movies, optionally filtered on a genre name. Without an
// api key the fixed fallback list comes back instead.
func (s *service) discover(c context.Context, genreName string, page int) (interface{}, error) {
	if s.apiKey == "" {
		s.logger.Log(c, "", mylog.SeverityInfo, "No movie-api key configured: serving fallback list")

		return fallbackMovies, nil
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Discover movies, genre '%s', page %d", genreName, page)

	genreID, err := s.lookupGenreID(c, genreName)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"api_key": []string{s.apiKey},
		"page":    []string{strconv.Itoa(page)},
	}
	if genreID != 0 {
		params.Set("with_genres", strconv.Itoa(genreID))
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet, discoverURL+"?"+params.Encode(), nil, nil)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error calling discover api: %s", err))
	}

	if status < 200 || status >= 300 {
		return nil, myerrors.NewUpstreamError(status, respBody)
	}

	return json.RawMessage(respBody), nil
}

// lookupGenreID resolves a genre name to its numeric id with a
// case-insensitive exact match. An unknown name is not an error: it means
// no genre filter gets applied.
func (s *service) lookupGenreID(c context.Context, genreName string) (int, error) {
	if genreName == "" {
		return 0, nil
	}

	status, respBody, err := s.httpClient.Send(c, http.MethodGet,
		genreListURL+"?api_key="+url.QueryEscape(s.apiKey), nil, nil)
	if err != nil {
		return 0, myerrors.NewInternalError(fmt.Errorf("error calling genre api: %s", err))
	}

	if status < 200 || status >= 300 {
		return 0, myerrors.NewUpstreamError(status, respBody)
	}

	resp := genreListResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return 0, myerrors.NewInternalError(fmt.Errorf("error parsing genre response: %s", err))
	}

	for _, g := range resp.Genres {
		if strings.EqualFold(g.Name, genreName) {
			return g.ID, nil
		}
	}

	return 0, nil
}
