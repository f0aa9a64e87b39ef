package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/superapp/config"
	"github.com/MarcGrol/superapp/lib/myhttpclient"
	"github.com/MarcGrol/superapp/lib/mystore"
	"github.com/MarcGrol/superapp/lib/mytime"
	"github.com/MarcGrol/superapp/lib/myuuid"
	"github.com/MarcGrol/superapp/lib/myvault"
	"github.com/MarcGrol/superapp/services/crypto"
	"github.com/MarcGrol/superapp/services/geocode"
	"github.com/MarcGrol/superapp/services/googleoauth"
	"github.com/MarcGrol/superapp/services/home"
	"github.com/MarcGrol/superapp/services/movies"
	"github.com/MarcGrol/superapp/services/news"
	"github.com/MarcGrol/superapp/services/places"
	"github.com/MarcGrol/superapp/services/sports"
	"github.com/MarcGrol/superapp/services/stock"
	"github.com/MarcGrol/superapp/services/weather"
	"github.com/MarcGrol/superapp/services/workspace"
)

const (
	defaultTimeout = 10 * time.Second
	// overpass evaluates its query server-side and regularly needs more time
	placesTimeout = 30 * time.Second
)

func main() {
	c := context.Background()

	cfg := config.Load()

	router := mux.NewRouter()

	httpClient := myhttpclient.New(defaultTimeout)

	// Tokens survive restarts, consent sessions need not.
	tokenStore, tokenStoreCleanup, err := mystore.NewFileStore[myvault.Token](c, cfg.TokensDir)
	if err != nil {
		log.Fatalf("Error creating token store: %s", err)
	}
	defer tokenStoreCleanup()
	vault := myvault.New(tokenStore)

	sessionStore, sessionStoreCleanup, err := mystore.New[googleoauth.OAuthSessionSetup](c)
	if err != nil {
		log.Fatalf("Error creating session store: %s", err)
	}
	defer sessionStoreCleanup()

	services := []interface {
		RegisterEndpoints(c context.Context, router *mux.Router) error
	}{
		home.NewWebService(),
		weather.NewWebService(httpClient),
		crypto.NewWebService(httpClient),
		stock.NewWebService(httpClient),
		geocode.NewWebService(httpClient),
		places.NewWebService(myhttpclient.New(placesTimeout)),
		movies.NewWebService(cfg.TMDBAPIKey, httpClient),
		sports.NewWebService(cfg.SportsKey, httpClient),
		news.NewWebService(httpClient),
	}

	// The google endpoints need the downloaded client-secrets file. Without
	// it the proxy endpoints still work.
	oauthConfig, err := googleoauth.NewGoogleConfig(cfg.ClientSecretsFile, cfg.RedirectURL)
	if err != nil {
		log.Printf("Google endpoints disabled: %s", err)
	} else {
		googleClients := workspace.NewGoogleClients(oauthConfig)
		services = append(services,
			googleoauth.NewWebService(sessionStore, vault, mytime.RealNower{}, myuuid.RealUUIDer{}, googleoauth.NewOauthClient(oauthConfig)),
			workspace.NewWebService(vault, googleClients, googleClients),
		)
	}
	for _, service := range services {
		err := service.RegisterEndpoints(c, router)
		if err != nil {
			log.Fatalf("Error registering endpoints: %s", err)
		}
	}

	startWebServerBlocking(router, cfg.Port)
}

func startWebServerBlocking(router *mux.Router, port int) {
	log.Printf("Starting webserver on port %d (try http://localhost:%d)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %d: %s", port, err)
	}
}
