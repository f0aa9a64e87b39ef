package crypto

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
	logger := mylog.New("crypto")

	return &webService{
		logger:  logger,
		service: newService(httpClient, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/crypto", s.pricesPage()).Methods("GET")

	return nil
}

func (s *webService) pricesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		ids := r.URL.Query().Get("ids")
		if ids == "" {
			ids = "bitcoin"
		}

		vsCurrency := r.URL.Query().Get("vs_currency")
		if vsCurrency == "" {
			vsCurrency = "usd"
		}

		resp, err := s.service.prices(c, ids, vsCurrency)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
