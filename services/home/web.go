package home

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/superapp/lib/mycontext"
	"github.com/MarcGrol/superapp/lib/myhttp"
	"github.com/MarcGrol/superapp/lib/mylog"
)

type webService struct {
	logger mylog.Logger
}

func NewWebService() *webService {
	return &webService{
		logger: mylog.New("home"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/", s.indexPage()).Methods("GET")

	return nil
}

type indexResponse struct {
	Name      string   `json:"name"`
	BaseURL   string   `json:"baseUrl"`
	Auth      string   `json:"auth,omitempty"`
	Endpoints []string `json:"endpoints"`
}

// indexPage lists what the app can do. It doubles as the landing page
// after the consent flow (/?auth=ok).
func (s *webService) indexPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		writer := myhttp.NewWriter(s.logger)

		writer.Write(c, w, http.StatusOK, indexResponse{
			Name:    "superapp",
			BaseURL: myhttp.HostnameWithScheme(r),
			Auth:    r.URL.Query().Get("auth"),
			Endpoints: []string{
				"/api/weather",
				"/api/crypto",
				"/api/stock",
				"/api/geocode",
				"/api/places",
				"/api/movies",
				"/api/sports",
				"/api/news",
				"/auth/google",
				"/api/create_event",
				"/api/gmail_threads",
				"/api/gmail_send",
			},
		})
	}
}
