package geocode

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/superapp/lib/mycontext"
	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttp"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mylog"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewWebService(httpClient myhttpclient.HTTPSender) *webService {
	logger := mylog.New("geocode")

	return &webService{
		logger:  logger,
		service: newService(httpClient, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/geocode", s.searchPage()).Methods("GET")

	return nil
}

func (s *webService) searchPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		query := r.URL.Query().Get("q")
		if query == "" {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("missing q"))
			return
		}

		resp, err := s.service.search(c, query)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
