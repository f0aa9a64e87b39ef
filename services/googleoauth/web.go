package googleoauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/superapp/lib/mycontext"
	"github.com/MarcGrol/superapp/lib/myerrors"
	"github.com/MarcGrol/superapp/lib/myhttp"
	"github.com/MarcGrol/superapp/lib/mylog"
	"github.com/MarcGrol/superapp/lib/mystore"
	"github.com/MarcGrol/superapp/lib/mytime"
	"github.com/MarcGrol/superapp/lib/myuuid"
	"github.com/MarcGrol/superapp/lib/myvault"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewWebService(sessionStore mystore.Store[OAuthSessionSetup], vault myvault.VaultReadWriter, nower mytime.Nower, uuider myuuid.UUIDer, oauthClient OauthClient) *webService {
	return &webService{
		logger:  mylog.New("googleoauth"),
		service: newService(sessionStore, vault, nower, uuider, oauthClient),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/auth/google", s.startPage()).Methods("GET")
	router.HandleFunc("/oauth2callback", s.donePage()).Methods("GET")

	return nil
}

func (s *webService) startPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		authenticationURL, err := s.service.start(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, authenticationURL, http.StatusFound)
	}
}

func (s *webService) donePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorParam := r.URL.Query().Get("error")
		if errorParam != "" {
			errorDescription := r.URL.Query().Get("error_description")
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("%s (%s)", errorParam, errorDescription)))
			return
		}

		sessionUID := r.URL.Query().Get("state")
		if sessionUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing state")))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("missing code")))
			return
		}

		err := s.service.done(c, sessionUID, code)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		http.Redirect(w, r, "/?auth=ok", http.StatusFound)
	}
}
