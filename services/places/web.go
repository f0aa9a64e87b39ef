package places

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

func NewWebService(httpClient myhttpclient.HTTPSender) *webService {
	logger := mylog.New("places")

	return &webService{
		logger:  logger,
		service: newService(httpClient, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/places", s.nearbyPage()).Methods("GET")

	return nil
}

func (s *webService) nearbyPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("missing or malformed lat"))
			return
		}

		lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing or malformed lon"))
			return
		}

		radius := 1000
		if radiusParam := r.URL.Query().Get("radius"); radiusParam != "" {
			radius, err = strconv.Atoi(radiusParam)
			if err != nil {
				errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputErrorf("malformed radius"))
				return
			}
		}

		amenity := r.URL.Query().Get("amenity")
		if amenity == "" {
			amenity = "restaurant"
		}

		resp, err := s.service.nearby(c, lat, lon, radius, amenity)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
