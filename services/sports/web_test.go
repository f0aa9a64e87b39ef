package sports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/superapp/lib/myhttpclient"
)

func TestSports(t *testing.T) {

	t.Run("Team given searches by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl, "")

		// given: unconfigured key falls back to the shared public key
		upstreamBody := `{"teams":[{"strTeam":"Arsenal","strLeague":"English Premier League"}]}`
		httpClient.EXPECT().Send(gomock.Any(), http.MethodGet,
			"https://www.thesportsdb.com/api/v1/json/1/searchteams.php?t=Arsenal", nil, nil).
			Return(200, []byte(upstreamBody), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/sports?team=Arsenal", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, upstreamBody, response.Body.String())
	})

	t.Run("No team lists all teams in the sport", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, httpClient := setup(t, ctrl, "mykey")

		// given
		httpClient.EXPECT().Send(gomock.Any(), http.MethodGet,
			"https://www.thesportsdb.com/api/v1/json/mykey/search_all_teams.php?l=Basketball", nil, nil).
			Return(200, []byte(`{"teams":[]}`), nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/sports?sport=Basketball", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller, apiKey string) (*mux.Router, *myhttpclient.MockHTTPSender) {
	router := mux.NewRouter()
	httpClient := myhttpclient.NewMockHTTPSender(ctrl)

	sut := NewWebService(apiKey, httpClient)
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, httpClient
}
