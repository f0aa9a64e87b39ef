package news

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

func NewWebService(httpClient myhttpclient.HTTPSender) *webService {
	logger := mylog.New("news")

	return &webService{
		logger:  logger,
		service: newService(httpClient, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/news", s.headlinesPage()).Methods("GET")

	return nil
}

func (s *webService) headlinesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		query := r.URL.Query().Get("query")
		if query == "" {
			query = "top stories"
		}

		resp, err := s.service.headlines(c, query)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
