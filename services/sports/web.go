package sports

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/superapp/lib/mycontext"
	"github.com/MarcGrol/superapp/lib/myhttp"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewWebService(apiKey string, httpClient myhttpclient.HTTPSender) *webService {
	logger := mylog.New("sports")

	return &webService{
		logger:  logger,
		service: newService(apiKey, httpClient, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/sports", s.teamsPage()).Methods("GET")

	return nil
}

func (s *webService) teamsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sport := r.URL.Query().Get("sport")
		if sport == "" {
			sport = "Soccer"
		}

		team := r.URL.Query().Get("team")

		resp, err := s.service.teams(c, sport, team)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
