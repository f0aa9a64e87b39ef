package movies

import (
	"context"
	"net/http"
	"strconv"

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

func NewWebService(apiKey string, httpClient myhttpclient.HTTPSender) *webService {
	logger := mylog.New("movies")

	return &webService{
		logger:  logger,
		service: newService(apiKey, httpClient, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/movies", s.discoverPage()).Methods("GET")

	return nil
}

func (s *webService) discoverPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		genreName := r.URL.Query().Get("genre")

		page := 1
		if pageParam := r.URL.Query().Get("page"); pageParam != "" {
			var err error
			page, err = strconv.Atoi(pageParam)
			if err != nil {
				errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("malformed page"))
				return
			}
		}

		resp, err := s.service.discover(c, genreName, page)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
